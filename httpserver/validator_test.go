package httpserver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviecatalog/errs"
	"moviecatalog/httpserver"
)

func TestCustomValidator(t *testing.T) {
	v := httpserver.NewValidator()

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(httpserver.GenreRequest{Name: "comedy"}))
	})

	t.Run("messages use json names and are joined", func(t *testing.T) {
		err := v.Validate(httpserver.MovieRequest{Title: "  ", Genre: []string{""}})

		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Equal(t, "title must not be blank; releaseDate is required; genre[0] must not be blank", errs.ErrorMessage(err))
	})

	t.Run("percent signs in field names are kept verbatim", func(t *testing.T) {
		type discount struct {
			Rate string `json:"rate%" validate:"required"`
		}

		err := v.Validate(discount{})

		assert.Equal(t, "rate% is required", errs.ErrorMessage(err))
	})
}
