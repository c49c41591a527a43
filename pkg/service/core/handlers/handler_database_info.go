package handlers

import (
	"context"
	"net/http"

	"github.com/navikt/dbinfo-backend/pkg/errs"
	"github.com/navikt/dbinfo-backend/pkg/service"
	"github.com/navikt/dbinfo-backend/pkg/service/core/transport"
)

type DatabaseInfoResponse struct {
	Success   bool                  `json:"success"`
	Database  *service.DatabaseInfo `json:"database"`
	Timestamp string                `json:"timestamp"`
}

// AllTablesResponse is the shape of the legacy /api route
type AllTablesResponse struct {
	Success   bool                `json:"success"`
	Result    []service.TableInfo `json:"result"`
	Count     int                 `json:"count"`
	Timestamp string              `json:"timestamp"`
}

type TablesListResponse struct {
	Success   bool                `json:"success"`
	Tables    []service.TableInfo `json:"tables"`
	Count     int                 `json:"count"`
	Timestamp string              `json:"timestamp"`
}

type DatabaseStatsResponse struct {
	Success   bool                   `json:"success"`
	Stats     *service.DatabaseStats `json:"stats"`
	Timestamp string                 `json:"timestamp"`
}

type DatabaseInfoHandler struct {
	databaseInfoService service.DatabaseInfoService
}

func (h *DatabaseInfoHandler) GetDatabaseInfo(ctx context.Context, _ *http.Request, _ any) (*transport.Reply, error) {
	return reply(h.databaseInfoService.GetDatabaseInfo(ctx), func(info *service.DatabaseInfo, ts string) any {
		return &DatabaseInfoResponse{
			Success:   true,
			Database:  info,
			Timestamp: ts,
		}
	}), nil
}

func (h *DatabaseInfoHandler) GetAllTables(ctx context.Context, _ *http.Request, _ any) (*transport.Reply, error) {
	return reply(h.databaseInfoService.GetAllTables(ctx), func(tables []service.TableInfo, ts string) any {
		return &AllTablesResponse{
			Success:   true,
			Result:    tables,
			Count:     len(tables),
			Timestamp: ts,
		}
	}), nil
}

func (h *DatabaseInfoHandler) GetTablesList(ctx context.Context, _ *http.Request, _ any) (*transport.Reply, error) {
	return reply(h.databaseInfoService.GetTablesList(ctx), func(tables []service.TableInfo, ts string) any {
		return &TablesListResponse{
			Success:   true,
			Tables:    tables,
			Count:     len(tables),
			Timestamp: ts,
		}
	}), nil
}

func (h *DatabaseInfoHandler) GetDatabaseStats(ctx context.Context, _ *http.Request, _ any) (*transport.Reply, error) {
	return reply(h.databaseInfoService.GetDatabaseStats(ctx), func(stats *service.DatabaseStats, ts string) any {
		return &DatabaseStatsResponse{
			Success:   true,
			Stats:     stats,
			Timestamp: ts,
		}
	}), nil
}

// reply turns an envelope into a 200 with the route specific body, or a 500
// carrying the envelope's error.
func reply[T any](env *service.Envelope[T], body func(data T, timestamp string) any) *transport.Reply {
	if !env.Success {
		return transport.NewReply(http.StatusInternalServerError, &errs.ErrorResponse{
			Success:   false,
			Error:     env.Error,
			Timestamp: env.Timestamp,
		})
	}

	return transport.OK(body(env.Data, env.Timestamp))
}

func NewDatabaseInfoHandler(s service.DatabaseInfoService) *DatabaseInfoHandler {
	return &DatabaseInfoHandler{
		databaseInfoService: s,
	}
}
