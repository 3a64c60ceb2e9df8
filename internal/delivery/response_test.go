package delivery

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errors.New("product with id 5 not found"), http.StatusNotFound},
		{"ownership mismatch", errors.New("user with id 3 does not belong to product with id 5"), http.StatusBadRequest},
		{"membership mismatch", errors.New("category with id 2 is not linked to product with id 5"), http.StatusBadRequest},
		{"duplicate", errors.New(`pq: duplicate key value violates unique constraint "categories_pkey"`), http.StatusConflict},
		{"invalid input", errors.New("invalid product ID"), http.StatusBadRequest},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorToStatus(tt.err))
		})
	}
}
