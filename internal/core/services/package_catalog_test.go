package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/core/services"
)

func TestPackageCatalog_FindByID(t *testing.T) {
	catalog := services.NewPackageCatalog(services.DefaultPackageDefinitions())

	def, err := catalog.FindByID("PKG-HB")
	require.NoError(t, err)
	assert.Equal(t, "Half Board", def.Name)
	assert.Equal(t, domain.HalfBoard, def.Type)
	assert.Len(t, def.Components, 2)

	_, err = catalog.FindByID("PKG-UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPackageCatalog_FindByCode_CaseInsensitive(t *testing.T) {
	catalog := services.NewPackageCatalog(services.DefaultPackageDefinitions())

	def, err := catalog.FindByCode("bb")
	require.NoError(t, err)
	assert.Equal(t, "PKG-BB", def.PackageID)

	def, err = catalog.FindByCode("AI")
	require.NoError(t, err)
	assert.Equal(t, domain.AllInclusive, def.Type)

	_, err = catalog.FindByCode("XX")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPackageCatalog_List_ExcludesInactive(t *testing.T) {
	defs := services.DefaultPackageDefinitions()
	defs[0].Active = false
	catalog := services.NewPackageCatalog(defs)

	active := catalog.List()
	assert.Len(t, active, len(defs)-1)
	for _, def := range active {
		assert.NotEqual(t, defs[0].PackageID, def.PackageID)
	}

	// Inactive definitions stay resolvable; historic postings reference them.
	def, err := catalog.FindByID(defs[0].PackageID)
	require.NoError(t, err)
	assert.False(t, def.Active)
}

func TestPackageCatalog_List_PreservesOrder(t *testing.T) {
	catalog := services.NewPackageCatalog(services.DefaultPackageDefinitions())

	var codes []string
	for _, def := range catalog.List() {
		codes = append(codes, def.Code)
	}
	assert.Equal(t, []string{"RO", "BB", "HB", "FB", "AI"}, codes)
}

func TestDefaultPackageDefinitions_NightAuditRules(t *testing.T) {
	catalog := services.NewPackageCatalog(services.DefaultPackageDefinitions())

	hb, err := catalog.FindByID("PKG-HB")
	require.NoError(t, err)
	for _, comp := range hb.Components {
		rule, ok := hb.RuleFor(comp.ComponentID)
		require.True(t, ok)
		assert.Equal(t, domain.PostAtNightAudit, rule.PostingTime)
	}

	fb, err := catalog.FindByID("PKG-FB")
	require.NoError(t, err)
	lunch, ok := fb.RuleFor("CMP-LUN")
	require.True(t, ok)
	assert.Equal(t, domain.PostOnConsumption, lunch.PostingTime)
}
