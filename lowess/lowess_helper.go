package lowess

import (
	"context"
	"strconv"

	"github.com/uyouii/lowess-smoothing/common"
	"github.com/uyouii/lowess-smoothing/model"
	"github.com/uyouii/lowess-smoothing/utils"
	"go.uber.org/zap"
)

// SmoothTimeSeries smooths a time series over its timestamps and returns
// a new series with the same labels, times and order. Timestamps are
// shifted to elapsed seconds from the first point before fitting, which
// leaves the polynomial fit unchanged but keeps the design matrix well
// conditioned for high epoch values.
func SmoothTimeSeries(ctx context.Context, series *model.TimeSeries,
	bandwidth float64, polynomialDegree int) (*model.TimeSeries, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("SmoothTimeSeries recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("series", series.DebugString()))
		}
	}()

	if series.IsEmpty() {
		logger.Error("empty time series, skip smoothing")
		return nil, common.NewError(common.ErrorInsufficientData, "empty time series")
	}

	base := series.Values[0].Time
	x, y := model.NewSeries(), model.NewSeries()
	for _, timeValue := range series.Values {
		key := strconv.FormatInt(timeValue.Time.UnixNano(), 10)
		x.Append(key, timeValue.Time.Sub(base).Seconds())
		y.Append(key, timeValue.Value)
	}

	smoothed, err := Smooth(ctx, x, y, bandwidth, polynomialDegree)
	if err != nil {
		logger.Error("smooth time series failed", zap.Error(err),
			zap.String("series", series.DebugString()))
		return nil, err
	}

	res := &model.TimeSeries{
		Labels: series.Labels,
		Values: make([]model.TimeValue, 0, len(series.Values)),
	}
	for i, sample := range smoothed.Samples {
		res.Values = append(res.Values, model.TimeValue{
			Time:  series.Values[i].Time,
			Value: sample.Value,
		})
	}

	logger.Info("smooth time series success", zap.Int("pointCount", len(res.Values)),
		zap.Float64("bandwidth", bandwidth), zap.Int("polynomialDegree", polynomialDegree))
	return res, nil
}

// SmoothRecordValues smooths record values over their timestamps and
// returns records in the input order, values rounded to 6 decimals for
// compact serialization.
func SmoothRecordValues(ctx context.Context, records []model.RecordValue,
	bandwidth float64, polynomialDegree int) ([]model.RecordValue, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("SmoothRecordValues recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("recordCount", len(records)))
		}
	}()

	if len(records) == 0 {
		logger.Error("no record values, skip smoothing")
		return nil, common.NewError(common.ErrorInsufficientData, "no record values")
	}

	base := records[0].Timestamp
	x, y := model.NewSeries(), model.NewSeries()
	for _, record := range records {
		key := strconv.FormatInt(record.Timestamp, 10)
		x.Append(key, float64(record.Timestamp-base))
		y.Append(key, record.Value)
	}

	smoothed, err := Smooth(ctx, x, y, bandwidth, polynomialDegree)
	if err != nil {
		logger.Error("smooth record values failed", zap.Error(err),
			zap.Int("recordCount", len(records)))
		return nil, err
	}

	res := make([]model.RecordValue, 0, len(records))
	for i, sample := range smoothed.Samples {
		res = append(res, model.RecordValue{
			Timestamp: records[i].Timestamp,
			Value:     utils.FormatFloat(sample.Value, 6),
		})
	}
	return res, nil
}
