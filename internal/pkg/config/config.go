// Package config assembles and validates the search options.
//
// Values come from viper, which already merges command line flags, CWS_*
// environment variables, the config file and defaults in that order of
// precedence. Validation uses a shared validator with English messages.
package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/endorses/cwsearch/internal/pkg/cmdutil"
	"github.com/endorses/cwsearch/internal/pkg/constants"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

// Config keys
const (
	KeyWorkers    = "search.workers"
	KeyMaxSize    = "search.max_size"
	KeyNormalize  = "search.normalize"
	KeyIgnoreCase = "search.ignore_case"
	KeyJSON       = "search.json"
	KeyLogLevel   = "log.level"
)

// SearchConfig holds the options of one search run.
type SearchConfig struct {
	Workers    int    `key:"workers" validate:"min=1,max=256"`
	MaxSize    string `key:"max_size" validate:"required,size"`
	Normalize  string `key:"normalize" validate:"oneof=none nfc nfkc"`
	IgnoreCase bool   `key:"ignore_case"`
	JSON       bool   `key:"json"`
}

// SetDefaults registers the defaults for every search key.
func SetDefaults() {
	viper.SetDefault(KeyWorkers, constants.DefaultWorkers)
	viper.SetDefault(KeyMaxSize, constants.DefaultMaxInputSize)
	viper.SetDefault(KeyNormalize, "none")
	viper.SetDefault(KeyIgnoreCase, false)
	viper.SetDefault(KeyJSON, false)
	viper.SetDefault(KeyLogLevel, "warn")
}

// Load reads the search options from viper and validates them.
func Load() (*SearchConfig, error) {
	cfg := &SearchConfig{
		Workers:    viper.GetInt(KeyWorkers),
		MaxSize:    viper.GetString(KeyMaxSize),
		Normalize:  strings.ToLower(viper.GetString(KeyNormalize)),
		IgnoreCase: viper.GetBool(KeyIgnoreCase),
		JSON:       viper.GetBool(KeyJSON),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxBytes returns MaxSize in bytes. Call after Validate.
func (c *SearchConfig) MaxBytes() int64 {
	n, _ := cmdutil.ParseSizeString(c.MaxSize)
	return n
}

// Validate checks c and returns ValidationErrors on failure.
func (c *SearchConfig) Validate() error {
	svc := validatorService()
	err := svc.validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Translate(svc.trans),
		})
	}
	return out
}

// FieldError describes one invalid option.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// ValidationErrors lists every invalid option of a SearchConfig.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

type service struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	svcOnce sync.Once
	svc     *service
)

func validatorService() *service {
	svcOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// Report config key names rather than Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if key := fld.Tag.Get("key"); key != "" {
				return key
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerSize(v, trans)

		svc = &service{validate: v, trans: trans}
	})
	return svc
}

// registerSize adds the "size" tag for values accepted by ParseSizeString.
func registerSize(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
		_, err := cmdutil.ParseSizeString(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("size", trans,
		func(ut ut.Translator) error {
			return ut.Add("size", "{0} must be a size such as 512K, 64M or 1G", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("size", fe.Field())
			return t
		},
	)
}
