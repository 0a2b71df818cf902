package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

func TestPostingReference(t *testing.T) {
	auditDate := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		source      string
		componentID string
		want        string
	}{
		{
			name:   "room posting has no component segment",
			source: "ROOM",
			want:   "ROOM-RES-42-2025-08-31",
		},
		{
			name:        "package posting appends the component",
			source:      "PKG",
			componentID: "CMP-BRK",
			want:        "PKG-RES-42-2025-08-31-CMP-BRK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PostingReference(tt.source, "RES-42", auditDate, tt.componentID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostingReference_DistinctPerDate(t *testing.T) {
	day1 := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t,
		domain.PostingReference("ROOM", "RES-1", day1, ""),
		domain.PostingReference("ROOM", "RES-1", day2, ""))
}
