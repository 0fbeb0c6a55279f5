// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/fnxlabs/levelup/internal/admin/internal/domain"
	"github.com/fnxlabs/levelup/internal/admin/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxImportSize = 10 << 20

type TableHandler struct {
	svc    service.TableService
	logger *elog.Component
}

func NewTableHandler(svc service.TableService) *TableHandler {
	return &TableHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *TableHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/tables")
	g.GET("", ginx.W(h.Schemas))
	g.GET("/:table/schema", ginx.W(h.Schema))
	g.POST("/:table/list", ginx.B[FetchReq](h.List))
	g.POST("/:table/upsert", ginx.B[UpsertReq](h.Upsert))
	g.POST("/:table/delete", ginx.B[DeleteReq](h.Delete))
	g.GET("/:table/export", ginx.W(h.Export))
	g.GET("/:table/export.csv", ginx.W(h.ExportCSV))
	g.POST("/:table/import", ginx.W(h.Import))
}

func (h *TableHandler) Schemas(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: slice.Map(h.svc.Schemas(), func(idx int, src domain.TableSchema) Schema {
			return h.toSchema(src)
		}),
	}, nil
}

func (h *TableHandler) Schema(ctx *ginx.Context) (ginx.Result, error) {
	schema, err := h.svc.Schema(tableName(ctx))
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	return ginx.Result{Data: h.toSchema(schema)}, nil
}

func (h *TableHandler) List(ctx *ginx.Context, req FetchReq) (ginx.Result, error) {
	res, err := h.svc.Fetch(ctx.Request.Context(), tableName(ctx), req.Page, req.Limit, req.Search)
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	return ginx.Result{
		Data: Page{
			Rows:  toMaps(res.Rows),
			Total: res.Total,
			Page:  res.Page,
			Limit: res.Limit,
			Error: res.Error,
		},
	}, nil
}

func (h *TableHandler) Upsert(ctx *ginx.Context, req UpsertReq) (ginx.Result, error) {
	return h.upsert(ctx, tableName(ctx), slice.Map(req.Rows, func(idx int, src map[string]any) domain.Row {
		return src
	}))
}

func (h *TableHandler) upsert(ctx *ginx.Context, table string, rows []domain.Row) (ginx.Result, error) {
	res, err := h.svc.Upsert(ctx.Request.Context(), table, rows)
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	return ginx.Result{
		Data: UpsertResult{
			Success:  res.Success,
			Inserted: res.Inserted,
			Errors:   res.Errors,
		},
	}, nil
}

func (h *TableHandler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	key := domain.RowKey(req.Key)
	if req.Id != nil {
		key = domain.IDKey(req.Id)
	}
	res, err := h.svc.Delete(ctx.Request.Context(), tableName(ctx), key)
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	return ginx.Result{
		Data: DeleteResult{Success: res.Success, Error: res.Error},
	}, nil
}

func (h *TableHandler) Export(ctx *ginx.Context) (ginx.Result, error) {
	rows, err := h.svc.ExportAll(ctx.Request.Context(), tableName(ctx))
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	return ginx.Result{Data: toMaps(rows)}, nil
}

func (h *TableHandler) ExportCSV(ctx *ginx.Context) (ginx.Result, error) {
	table := tableName(ctx)
	schema, err := h.svc.Schema(table)
	if err != nil {
		return abortWithTableError(ctx, err)
	}
	rows, err := h.svc.ExportAll(ctx.Request.Context(), table)
	if err != nil {
		return systemErrorResult, err
	}
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, table))
	ctx.Status(http.StatusOK)
	err = writeCSV(ctx.Writer, schema.ColumnNames(), rows)
	if err != nil {
		h.logger.Error("导出 CSV 失败", elog.String("table", table), elog.FieldErr(err))
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *TableHandler) Import(ctx *ginx.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil || fh.Size > maxImportSize {
		return invalidFileResult, nil
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	rows, err := readCSV(f)
	if err != nil {
		h.logger.Warn("解析 CSV 失败", elog.String("file", fh.Filename), elog.FieldErr(err))
		return invalidFileResult, nil
	}
	return h.upsert(ctx, tableName(ctx), rows)
}

func tableName(ctx *ginx.Context) string {
	return ctx.Param("table").StringOrDefault("")
}

func (h *TableHandler) toSchema(s domain.TableSchema) Schema {
	return Schema{
		Name: s.Name,
		Columns: slice.Map(s.Columns, func(idx int, src domain.Column) Column {
			return Column{Name: src.Name, Type: string(src.Type), ReadOnly: src.ReadOnly || s.ReadOnly}
		}),
		SearchColumn:    s.SearchColumn,
		ConflictColumns: s.ConflictColumns,
		ReadOnly:        s.ReadOnly,
	}
}

func toMaps(rows []domain.Row) []map[string]any {
	return slice.Map(rows, func(idx int, src domain.Row) map[string]any {
		return src
	})
}

func writeCSV(w io.Writer, header []string, rows []domain.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = cell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.RawMessage:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// readCSV 第一行是列名，空的单元格在写入的时候会被忽略
func readCSV(r io.Reader) ([]domain.Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	// 表格软件导出的 CSV 经常带 BOM
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) == 0 || header[0] == "" {
		return nil, errors.New("缺少表头")
	}
	var rows []domain.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := make(domain.Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
}
