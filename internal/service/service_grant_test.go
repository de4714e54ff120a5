package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/mock"
	"github.com/webdev-team/access-server/internal/search"
	"github.com/webdev-team/access-server/internal/store"
	"github.com/webdev-team/access-server/models"
)

func newTestGrantService(t *testing.T, ctrl *gomock.Controller) (*grantService, *mock.MockGrantRepository) {
	t.Helper()
	mockRepo := mock.NewMockGrantRepository(ctrl)
	svc := &grantService{
		repository: mockRepo,
		logger:     logger.Nop(),
	}
	return svc, mockRepo
}

func TestGrantService_Search_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	level := "lead"
	grantSearch := models.GrantSearch{AccessID: search.Exact[int64](5)}
	grants := []models.Grant{
		{GrantID: 1, AccessID: 5, UserID: 7, PermissionLevel: &level},
		{GrantID: 2, AccessID: 5, UserID: 8},
	}
	mockRepo.EXPECT().SearchGrants(ctx, grantSearch).Return(grants, nil)

	response, err := svc.Execute(ctx, models.SearchGrants{Search: grantSearch})
	require.NoError(t, err)

	assert.Equal(t, models.ManyGrants{Grants: grants}, response)
}

func TestGrantService_Search_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().SearchGrants(ctx, models.GrantSearch{}).Return([]models.Grant{}, nil)

	response, err := svc.Execute(ctx, models.SearchGrants{})
	require.NoError(t, err)

	manyGrants, ok := response.(models.ManyGrants)
	require.True(t, ok)
	assert.Empty(t, manyGrants.Grants)
}

func TestGrantService_Check_Granted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CheckAccess(ctx, int64(7), int64(3)).Return(true, nil)

	response, err := svc.Execute(ctx, models.CheckAccess{UserID: 7, AccessID: 3})
	require.NoError(t, err)

	assert.Equal(t, models.AccessState{Granted: true}, response)
}

func TestGrantService_Check_NotGranted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CheckAccess(ctx, int64(7), int64(99)).Return(false, nil)

	response, err := svc.Execute(ctx, models.CheckAccess{UserID: 7, AccessID: 99})
	require.NoError(t, err)

	assert.Equal(t, models.AccessState{Granted: false}, response)
}

func TestGrantService_Create_ReturnsGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	level := "lead"
	newGrant := models.NewGrant{AccessID: 5, UserID: 7, PermissionLevel: &level}
	created := models.Grant{GrantID: 1, AccessID: 5, UserID: 7, PermissionLevel: &level}
	mockRepo.EXPECT().CreateGrant(ctx, newGrant).Return(created, nil)

	response, err := svc.Execute(ctx, models.CreateGrant{New: newGrant})
	require.NoError(t, err)

	assert.Equal(t, models.OneGrant{Grant: created}, response)
}

func TestGrantService_Update_ReturnsGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	partial := models.PartialGrant{PermissionLevel: models.OptionalStringNull()}
	updated := models.Grant{GrantID: 12, AccessID: 5, UserID: 7}
	mockRepo.EXPECT().UpdateGrant(ctx, int64(12), partial).Return(updated, nil)

	response, err := svc.Execute(ctx, models.UpdateGrant{ID: 12, Partial: partial})
	require.NoError(t, err)

	assert.Equal(t, models.OneGrant{Grant: updated}, response)
}

func TestGrantService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateGrant(ctx, int64(99), gomock.Any()).Return(models.Grant{}, store.ErrGrantNotFound)

	_, err := svc.Execute(ctx, models.UpdateGrant{ID: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrGrantNotFound)
}

func TestGrantService_Delete_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteGrant(ctx, int64(12)).Return(nil)

	response, err := svc.Execute(ctx, models.DeleteGrant{ID: 12})
	require.NoError(t, err)

	assert.Equal(t, models.NoContent{}, response)
}

func TestGrantService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestGrantService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteGrant(ctx, int64(99)).Return(store.ErrGrantNotFound)

	_, err := svc.Execute(ctx, models.DeleteGrant{ID: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrGrantNotFound)
}

func TestGrantService_UnknownRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestGrantService(t, ctrl)

	_, err := svc.Execute(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRequest)
}
