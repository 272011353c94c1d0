package xlsexport

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hrms-backend/models/db"
)

var auditHeaders = []string{"Дата и время", "Действие", "Модуль", "Запись", "Пользователь", "Изменения", "Комментарий"}

func AuditLogExport(list []dbmodels.AuditLog) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, auditHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeAuditData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Журнал аудита")
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAuditData(f *excelize.File, sheet string, list []dbmodels.AuditLog, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(auditHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Дата и время"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Timestamp.Format("02.01.2006 15:04:05")); err != nil {
			return row, err
		}

		// "Действие"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Action)); err != nil {
			return row, err
		}

		// "Модуль"
		col++
		if err := writeColumn(f, sheet, col, row, item.Module); err != nil {
			return row, err
		}

		// "Запись"
		col++
		if err := writeColumn(f, sheet, col, row, item.RecordID); err != nil {
			return row, err
		}

		// "Пользователь"
		col++
		if err := writeColumn(f, sheet, col, row, item.PerformedBy); err != nil {
			return row, err
		}

		// "Изменения"
		col++
		if len(item.Changes.Data) != 0 {
			body, err := json.Marshal(item.Changes)
			if err == nil {
				if err = writeColumn(f, sheet, col, row, string(body)); err != nil {
					return row, err
				}
			}
		}

		// "Комментарий"
		col++
		if err := writeColumn(f, sheet, col, row, item.Remarks); err != nil {
			return row, err
		}
	}
	return row, nil
}
