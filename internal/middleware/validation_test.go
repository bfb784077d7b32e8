package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sheetreport/internal/errors"
)

type rangeQuery struct {
	File     string `query:"file" validate:"omitempty,workbook"`
	MinPrice string `query:"min_price" validate:"omitempty,numeric"`
	Grade    string `query:"grade" validate:"omitempty,number,min=1"`
	Ignored  int    `query:"ignored"`
}

func TestQueryValidator_Bind(t *testing.T) {
	v := NewQueryValidator()

	tests := []struct {
		name      string
		query     string
		wantErr   bool
		wantField string
		want      rangeQuery
	}{
		{"empty", "", false, "", rangeQuery{}},
		{"all set", "file=products.xlsx&min_price=10.5&grade=3", false, "", rangeQuery{File: "products.xlsx", MinPrice: "10.5", Grade: "3"}},
		{"trims values", "min_price=%2010%20", false, "", rangeQuery{MinPrice: "10"}},
		{"upper-case extension", "file=REPORT.XLSX", false, "", rangeQuery{File: "REPORT.XLSX"}},
		{"traversal", "file=..%2Fsecret.xlsx", true, "file", rangeQuery{}},
		{"wrong extension", "file=products.csv", true, "file", rangeQuery{}},
		{"non numeric price", "min_price=cheap", true, "min_price", rangeQuery{}},
		{"non integer grade", "grade=2.5", true, "grade", rangeQuery{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products?"+tt.query, nil)
			var got rangeQuery
			err := v.Bind(req, &got)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantField, appErr.Context["field"])
		})
	}
}

func TestQueryValidator_BindRejectsNonStruct(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var s string
	assert.Error(t, NewQueryValidator().Bind(req, &s))
	assert.Error(t, NewQueryValidator().Bind(req, rangeQuery{}))
}
