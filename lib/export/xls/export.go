package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	ExportJobList(list []dbmodels.Job) (*bytes.Buffer, error)
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var jobHeaders = []string{"Позиция", "Организация", "Локация", "Открытых мест", "Навыки", "Bill rate", "Pay rate", "Статус", "Дата создания"}

func (i impl) ExportJobList(list []dbmodels.Job) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, jobHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeJobData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Позиции")
	return f.WriteToBuffer()
}

func writeJobData(f *excelize.File, sheet string, list []dbmodels.Job, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(jobHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Позиция"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Организация"
		col++
		if err := writeColumn(f, sheet, col, row, item.GetOrgName()); err != nil {
			return row, err
		}

		// "Локация"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Открытых мест"
		col++
		if err := writeColumn(f, sheet, col, row, item.OpenedPositions); err != nil {
			return row, err
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}

		// "Bill rate"
		col++
		if err := writeColumn(f, sheet, col, row, item.BillRate); err != nil {
			return row, err
		}

		// "Pay rate"
		col++
		if err := writeColumn(f, sheet, col, row, item.PayRate); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Дата создания"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}

var applicationHeaders = []string{"ФИО", "Контакты", "Позиция", "Организация", "Ожидаемая ставка", "Интервью", "Статус", "Дата подачи"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Позиция"
		col++
		jobTitle := ""
		if item.Job != nil {
			jobTitle = item.Job.Title
		}
		if err := writeColumn(f, sheet, col, row, jobTitle); err != nil {
			return row, err
		}

		// "Организация"
		col++
		if err := writeColumn(f, sheet, col, row, item.GetOrgName()); err != nil {
			return row, err
		}

		// "Ожидаемая ставка"
		col++
		if err := writeColumn(f, sheet, col, row, item.ExpectedRate); err != nil {
			return row, err
		}

		// "Интервью"
		col++
		interview := ""
		if item.InterviewAt != nil {
			interview = item.InterviewAt.Format("02.01.2006 15:04")
		}
		if err := writeColumn(f, sheet, col, row, interview); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Дата подачи"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}
