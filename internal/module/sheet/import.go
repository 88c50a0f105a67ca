package sheet

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
)

// RowError reports one rejected spreadsheet row. Row numbers are
// 1-based as shown in the spreadsheet itself.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Import loads interns from an uploaded .xlsx. Every row goes through a
// strict parse step before any date arithmetic runs: rows that fail
// validation are reported with their reason, rows that pass are
// inserted with the derived expiration date, identically to records
// entered interactively.
func Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("envie um arquivo .xlsx no campo 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open upload", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		log.Error("failed to read spreadsheet", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips("arquivo não é uma planilha válida"))
		return
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("planilha vazia"))
		return
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		log.Error("failed to read rows", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if len(rows) < 2 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("planilha sem linhas de dados"))
		return
	}

	header, err := mapHeader(rows[0])
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	imported := 0
	var rowErrors []RowError
	for idx, cells := range rows[1:] {
		rowNumber := idx + 2

		record, err := parseRow(header, cells)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNumber, Reason: err.Error()})
			continue
		}
		if err := database.DB.Create(record).Error; err != nil {
			log.Error("failed to insert imported row", "error", err, "row", rowNumber)
			rowErrors = append(rowErrors, RowError{Row: rowNumber, Reason: "erro ao gravar no banco"})
			continue
		}
		imported++
	}

	database.Audit("IMPORTAÇÃO DE PLANILHA",
		fmt.Sprintf("Arquivo: %s, importados: %d, rejeitados: %d", fileHeader.Filename, imported, len(rowErrors)))
	log.Info("sheet imported",
		"file", fileHeader.Filename,
		"imported", imported,
		"rejected", len(rowErrors),
	)

	response.Success(c, gin.H{
		"imported": imported,
		"errors":   rowErrors,
	})
}

// importColumns are the accepted header names; data_ult_renovacao and
// obs are optional.
var requiredColumns = []string{"nome", "universidade", "data_admissao"}
var optionalColumns = []string{"data_ult_renovacao", "obs"}

func mapHeader(headerRow []string) (map[string]int, error) {
	header := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", col)
		}
	}
	return header, nil
}

func cell(header map[string]int, cells []string, column string) string {
	idx, ok := header[column]
	if !ok || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// parseRow validates one spreadsheet row into an intern record, with
// the expiration already derived. It returns an error instead of a
// partially-filled record: either the whole row is sound or it is
// rejected.
func parseRow(header map[string]int, cells []string) (*model.Intern, error) {
	name := strings.ToUpper(cell(header, cells, "nome"))
	if name == "" {
		return nil, errors.New("nome vazio")
	}
	university := strings.ToUpper(cell(header, cells, "universidade"))
	if university == "" {
		return nil, errors.New("universidade vazia")
	}

	admissionRaw := cell(header, cells, "data_admissao")
	admission, ok := lifecycle.ParseDate(admissionRaw)
	if !ok {
		return nil, fmt.Errorf("data_admissao inválida: %q", admissionRaw)
	}

	renewal := ""
	if raw := cell(header, cells, "data_ult_renovacao"); raw != "" {
		t, ok := lifecycle.ParseDate(raw)
		if !ok {
			return nil, fmt.Errorf("data_ult_renovacao inválida: %q", raw)
		}
		renewal = t.Format(lifecycle.StoreLayout)
	}

	record := &model.Intern{
		Name:            name,
		University:      university,
		AdmissionDate:   admission.Format(lifecycle.StoreLayout),
		LastRenewalDate: renewal,
		Note:            strings.ToUpper(cell(header, cells, "obs")),
	}
	record.ExpirationDate = lifecycle.FinalExpiration(&admission).Format(lifecycle.StoreLayout)
	return record, nil
}
