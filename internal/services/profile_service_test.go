package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
)

func testProfile(id string) *models.Profile {
	return &models.Profile{
		ProfileID:        id,
		BusinessName:     "Acme",
		Logo:             "https://cdn.example.com/acme.png",
		BusinessOverview: "Bulk spice exporter",
		BusinessType:     "Exporter",
		Established:      2005,
		Address:          "12 Spice Road",
		Owner:            "Jane Doe",
	}
}

func TestProfileService_CreateRoundTrip(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, testProfile("acme"))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.BusinessName)
	assert.Equal(t, created.ProfileID, got.ProfileID)
	assert.Equal(t, 2005, got.Established)
}

func TestProfileService_CreateRequiresBusinessKey(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())

	p := testProfile("")
	_, err := svc.Create(context.Background(), p)
	assert.Error(t, err)
}

func TestProfileService_DuplicateKeyRejected(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, testProfile("acme"))
	require.NoError(t, err)

	second := testProfile("acme")
	second.BusinessName = "Acme Impostor"
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicate)

	// First document is untouched.
	got, err := svc.GetByID(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.BusinessName)
}

func TestProfileService_UpdateIsFullReplace(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())
	ctx := context.Background()

	p := testProfile("acme")
	p.Website = "https://acme.example.com"
	_, err := svc.Create(ctx, p)
	require.NoError(t, err)

	replacement := testProfile("acme")
	replacement.BusinessName = "Acme Co"
	// Website deliberately omitted: replace semantics drop it.
	updated, err := svc.Update(ctx, "acme", replacement)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", updated.BusinessName)
	assert.Empty(t, updated.Website)

	// The business key cannot be changed by the payload.
	hijack := testProfile("other-id")
	out, err := svc.Update(ctx, "acme", hijack)
	require.NoError(t, err)
	assert.Equal(t, "acme", out.ProfileID)
}

func TestProfileService_UpdateMissing(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())

	_, err := svc.Update(context.Background(), "ghost", testProfile("ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileService_DeleteSemantics(t *testing.T) {
	svc := NewProfileService(repository.NewMemoryProfileRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, testProfile("acme"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(ctx, "acme")
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = svc.Delete(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, deleted)
}
