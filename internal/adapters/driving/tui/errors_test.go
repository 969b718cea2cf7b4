package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.EqualError(t, ErrMissingCatalogService, "tui: catalog service is required")
	assert.EqualError(t, ErrMissingApplicationService, "tui: application service is required")
	assert.NotErrorIs(t, ErrMissingCatalogService, ErrMissingApplicationService)
}
