package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"wbrent/config"
	"wbrent/infras/otel/mocks"
	userMocks "wbrent/internal/domains/user/mocks"
	"wbrent/internal/domains/user/model"
	"wbrent/internal/domains/user/model/dto"
	"wbrent/internal/domains/user/service"
	cacheMocks "wbrent/shared/cache/mocks"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"
	"wbrent/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func asUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    " Biuro@WB-Rent.pl ",
		Password: "tajne-haslo",
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "created as admin by default",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
					assert.Equal(t, "biuro@wb-rent.pl", u.Email)
					assert.Equal(t, constant.RoleAdmin, u.Level)
					assert.True(t, u.Active)
					assert.Equal(t, "root-id", u.CreatedBy)
					assert.NoError(t, password.Verify("tajne-haslo", u.Password))

					return nil
				})
			},
		},
		{
			name: "duplicate email",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert failure",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Create(asUser("root-id"), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("from repository", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), "user:get:u1", gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u1", Email: "a@wb-rent.pl", Password: "hash", Level: constant.RoleAdmin}, nil)

		res, err := svc.Get(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", res.ID)
		assert.Equal(t, constant.RoleAdmin, res.Level)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{{ID: "u1"}, {ID: "u2"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUserService_Update(t *testing.T) {
	inactive := false
	superadmin := constant.RoleSuperAdmin

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "promote another user",
			id:   "u2",
			req:  dto.UpdateUserRequest{Level: &superadmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, &superadmin, fields[model.FieldLevel])
					assert.Equal(t, "root-id", fields[constant.FieldModifiedBy])

					return nil
				})
			},
		},
		{
			name:      "empty request",
			id:        "u2",
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "cannot deactivate self",
			id:        "root-id",
			req:       dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "unknown user",
			id:   "u9",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Update(asUser("root-id"), tt.req, tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes another user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(asUser("root-id"), "u2"))
	})

	t.Run("cannot delete self", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Delete(asUser("root-id"), "root-id")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(asUser("root-id"), "u9")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_EnsureSuperAdmin(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
			assert.Equal(t, constant.RoleSuperAdmin, u.Level)
			assert.Equal(t, constant.ContextSystem, u.CreatedBy)

			return nil
		})

		created, err := svc.EnsureSuperAdmin(context.Background(), "root@wb-rent.pl", "bardzo-tajne")

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("keeps existing account", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		created, err := svc.EnsureSuperAdmin(context.Background(), "root@wb-rent.pl", "bardzo-tajne")

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.EnsureSuperAdmin(context.Background(), "root@wb-rent.pl", "short")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
