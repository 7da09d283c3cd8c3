package migration

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
)

// reporter collects the warnings of one run and mirrors them to the logger.
type reporter struct {
	ctx      context.Context
	logger   ectologger.Logger
	fields   map[string]any
	warnings []string
}

func newReporter(ctx context.Context, logger ectologger.Logger, legacyProjectID int, runID string) *reporter {
	return &reporter{
		ctx:    ctx,
		logger: logger,
		fields: map[string]any{
			"legacy_project_id": legacyProjectID,
			"run_id":            runID,
		},
	}
}

func (r *reporter) info(msg string, fields map[string]any) {
	r.entry(fields).Info(msg)
}

func (r *reporter) warn(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
		r.entry(nil).WithError(err).Warn(msg)
	} else {
		r.entry(nil).Warn(msg)
	}
	r.warnings = append(r.warnings, msg)
}

func (r *reporter) entry(fields map[string]any) ectologger.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return r.logger.WithContext(r.ctx).WithFields(merged)
}
