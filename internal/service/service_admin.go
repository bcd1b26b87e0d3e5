package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
)

type clientAdminService struct {
	adapter adapter.APIClient
	auth    ClientAuthService
	log     *logger.Logger
}

func NewClientAdminService(api adapter.APIClient, auth ClientAuthService, log *logger.Logger) ClientAdminService {
	return &clientAdminService{adapter: api, auth: auth, log: log}
}

func (a *clientAdminService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/dashboard", nil)
	if err != nil {
		return models.DashboardStats{}, a.auth.HandleAuthError(ctx, err)
	}

	var stats models.DashboardStats
	if err = requireFlat(env, "stats", &stats); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}

func (a *clientAdminService) Users(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Role != "" {
		query.Set("role", string(filter.Role))
	}
	if filter.DepartmentID != 0 {
		query.Set("department_id", strconv.FormatInt(filter.DepartmentID, 10))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	env, err := a.adapter.Get(ctx, "/api/admin/users", query)
	if err != nil {
		return nil, a.auth.HandleAuthError(ctx, err)
	}

	var users []models.User
	if err = requirePayload(env, "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *clientAdminService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	env, err := a.adapter.Put(ctx, "/api/admin/users/"+strconv.FormatInt(id, 10), update)
	if err != nil {
		return models.User{}, a.auth.HandleAuthError(ctx, err)
	}

	var user models.User
	if err = requirePayload(env, "user", &user); err != nil {
		return models.User{}, err
	}
	a.log.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

func (a *clientAdminService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := a.adapter.Delete(ctx, "/api/admin/users/"+strconv.FormatInt(id, 10)); err != nil {
		return a.auth.HandleAuthError(ctx, err)
	}
	a.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (a *clientAdminService) PendingUsers(ctx context.Context) ([]models.PendingUser, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/pending-users", nil)
	if err != nil {
		return nil, a.auth.HandleAuthError(ctx, err)
	}

	var pending []models.PendingUser
	if err = requirePayload(env, "pending_users", &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (a *clientAdminService) ApproveUser(ctx context.Context, id int64) error {
	if _, err := a.adapter.Post(ctx, fmt.Sprintf("/api/admin/pending-users/%d/approve", id), nil); err != nil {
		return a.auth.HandleAuthError(ctx, err)
	}
	a.log.Info().Int64("user_id", id).Msg("pending user approved")
	return nil
}

func (a *clientAdminService) DenyUser(ctx context.Context, id int64) error {
	if _, err := a.adapter.Post(ctx, fmt.Sprintf("/api/admin/pending-users/%d/deny", id), nil); err != nil {
		return a.auth.HandleAuthError(ctx, err)
	}
	a.log.Info().Int64("user_id", id).Msg("pending user denied")
	return nil
}

func (a *clientAdminService) ApproveAllUsers(ctx context.Context) (int, error) {
	env, err := a.adapter.Post(ctx, "/api/admin/approve-all-users", nil)
	if err != nil {
		return 0, a.auth.HandleAuthError(ctx, err)
	}

	var approved int
	if derr := env.DecodeField("approved_count", &approved); derr != nil {
		// Older backends only return a message; the count is best-effort.
		a.log.Debug().AnErr("decode", derr).Msg("approve-all reply carried no count")
	}
	a.log.Info().Int("approved", approved).Msg("approved all pending users")
	return approved, nil
}

func (a *clientAdminService) Departments(ctx context.Context) ([]models.Department, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/departments", nil)
	if err != nil {
		return nil, a.auth.HandleAuthError(ctx, err)
	}

	var departments []models.Department
	if err = requirePayload(env, "departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (a *clientAdminService) CreateDepartment(ctx context.Context, name, description string) (models.Department, error) {
	body := map[string]string{"name": name}
	if description != "" {
		body["description"] = description
	}

	env, err := a.adapter.Post(ctx, "/api/admin/departments", body)
	if err != nil {
		return models.Department{}, a.auth.HandleAuthError(ctx, err)
	}

	var department models.Department
	if err = requirePayload(env, "department", &department); err != nil {
		return models.Department{}, err
	}
	a.log.Info().Str("name", name).Msg("department created")
	return department, nil
}

func (a *clientAdminService) UpdateDepartment(ctx context.Context, id int64, name, description string) (models.Department, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if description != "" {
		body["description"] = description
	}

	env, err := a.adapter.Put(ctx, "/api/admin/departments/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return models.Department{}, a.auth.HandleAuthError(ctx, err)
	}

	var department models.Department
	if err = requirePayload(env, "department", &department); err != nil {
		return models.Department{}, err
	}
	a.log.Info().Int64("department_id", id).Msg("department updated")
	return department, nil
}

func (a *clientAdminService) DeleteDepartment(ctx context.Context, id int64) error {
	if _, err := a.adapter.Delete(ctx, "/api/admin/departments/"+strconv.FormatInt(id, 10)); err != nil {
		return a.auth.HandleAuthError(ctx, err)
	}
	a.log.Info().Int64("department_id", id).Msg("department deleted")
	return nil
}

func (a *clientAdminService) ImportUsers(ctx context.Context, file models.FileUpload, onProgress func(models.UploadProgress)) (string, error) {
	env, err := a.adapter.Upload(ctx, "/api/admin/import-users", file, onProgress)
	if err != nil {
		return "", a.auth.HandleAuthError(ctx, err)
	}
	a.log.Info().Str("file", file.Name).Msg("user roster imported")
	return env.Message, nil
}

func (a *clientAdminService) ExportUsers(ctx context.Context) ([]byte, string, error) {
	body, contentType, err := a.adapter.GetRaw(ctx, "/api/admin/export-users", nil)
	if err != nil {
		return nil, "", a.auth.HandleAuthError(ctx, err)
	}
	return body, contentType, nil
}

func (a *clientAdminService) Analytics(ctx context.Context) (models.Analytics, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/analytics", nil)
	if err != nil {
		return models.Analytics{}, a.auth.HandleAuthError(ctx, err)
	}

	// The analytics document's shape varies; keep it raw.
	if len(env.Data) > 0 {
		return models.Analytics{Data: env.Data}, nil
	}
	raw, merr := env.MarshalJSON()
	if merr != nil {
		return models.Analytics{}, merr
	}
	return models.Analytics{Data: raw}, nil
}

func (a *clientAdminService) AILogs(ctx context.Context) ([]models.AILogEntry, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/ai-logs", nil)
	if err != nil {
		return nil, a.auth.HandleAuthError(ctx, err)
	}

	var entries []models.AILogEntry
	if err = requirePayload(env, "logs", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *clientAdminService) SystemHealth(ctx context.Context) (models.SystemHealth, error) {
	env, err := a.adapter.Get(ctx, "/api/admin/system-health", nil)
	if err != nil {
		return models.SystemHealth{}, a.auth.HandleAuthError(ctx, err)
	}

	var health models.SystemHealth
	if err = requireFlat(env, "health", &health); err != nil {
		return models.SystemHealth{}, err
	}
	return health, nil
}
