package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		raw    string
		want   uint
		wantOK bool
	}{
		{name: "valid", raw: "7", want: 7, wantOK: true},
		{name: "zero", raw: "0", wantOK: false},
		{name: "negative", raw: "-1", wantOK: false},
		{name: "not a number", raw: "abc", wantOK: false},
		// Larger than any platform uint; must be rejected, never wrapped.
		{name: "overflow", raw: "18446744073709551616", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := pathID(c, "id")
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, id)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
