package content

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err := validate.RegisterValidation("link", validateLink); err != nil {
			panic(err)
		}
	})
	return validate
}

// validateLink accepts a placeholder ("" or "#"), an absolute http(s) URL or
// a site-relative path.
func validateLink(fl validator.FieldLevel) bool {
	v := strings.TrimSpace(fl.Field().String())
	if v == "" || v == "#" || strings.HasPrefix(v, "/") {
		return true
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks a Document before it is built.
func Validate(d *Document) error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := strings.TrimPrefix(fe.Namespace(), "Document.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", ns, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", ns, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid content: %s", strings.Join(msgs, "; "))
}
