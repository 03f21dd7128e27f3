package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/graft/internal/fileops"
	grafterrors "github.com/alexisbeaulieu97/graft/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("anchor", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
			return fileops.IsSupportedEncoding(fl.Field().String())
		})

		_ = v.RegisterValidation("target_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			return strings.TrimSpace(path) != "" && !strings.Contains(path, "\x00")
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return grafterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seenPaths := make(map[string]int, len(cfg.Files))
	for i, file := range cfg.Files {
		key := filepath.Clean(strings.TrimSpace(file.Path))
		if first, exists := seenPaths[key]; exists {
			return grafterrors.NewValidationError(fieldForFile(i, "path"), fmt.Sprintf("duplicate target path %q (also files[%d])", file.Path, first), nil)
		}
		seenPaths[key] = i

		seenNames := make(map[string]struct{}, len(file.Patches))
		for j, p := range file.Patches {
			if _, exists := seenNames[p.Name]; exists {
				return grafterrors.NewValidationError(fieldForPatch(i, j, "name"), fmt.Sprintf("duplicate patch name %q", p.Name), nil)
			}
			seenNames[p.Name] = struct{}{}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return grafterrors.NewValidationError(field, msg, err)
	}

	return grafterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, which the
// tag name func has already rewritten to YAML keys.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForFile(index int, field string) string {
	return fmt.Sprintf("files[%d].%s", index, field)
}

func fieldForPatch(file, patch int, field string) string {
	return fmt.Sprintf("files[%d].patches[%d].%s", file, patch, field)
}
