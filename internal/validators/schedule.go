package validators

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

const (
	TagClock   = "clock"
	TagISODate = "isodate"
	TagWeekday = "weekday"
)

var once sync.Once

// RegisterGin adds the schedule tags to gin's binding validator. Safe to
// call more than once.
func RegisterGin() error {
	var err error
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		err = Register(v)
	})
	return err
}

func Register(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		TagClock:   isClock,
		TagISODate: isISODate,
		TagWeekday: isWeekday,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "register %s", tag)
		}
	}
	return nil
}

// isClock accepts "HH:MM".
func isClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClock(fl.Field().String())
	return err == nil
}

// isISODate accepts "YYYY-MM-DD" only.
func isISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseISODate(fl.Field().String())
	return err == nil
}

// isWeekday accepts lowercase English weekday names, for map keys.
func isWeekday(fl validator.FieldLevel) bool {
	return domain.IsWeekday(fl.Field().String())
}
