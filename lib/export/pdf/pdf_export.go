package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "hrms-backend/models/db"
)

// GeneratePromotionLetter формирует письмо о повышении по утвержденной заявке
func GeneratePromotionLetter(rec dbmodels.ApprovalRequest) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePromotionLetter panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, "Company Name", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(200, 10, "Company Address Line 1", "", 1, "C", false, 0, "")
	pdf.CellFormat(200, 10, "Company Address Line 2", "", 1, "C", false, 0, "")
	pdf.Ln(20)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, fmt.Sprintf("Date: %v", time.Now().Format("January 2, 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(200, 10, "To,", "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 10, rec.EmployeeID, "", 1, "L", false, 0, "")
	pdf.Ln(10)

	approvedBy := "N/A"
	if rec.ApprovedBy != nil {
		approvedBy = *rec.ApprovedBy
	}
	body := fmt.Sprintf("Subject: Promotion to %v\n\n", rec.NewRole) +
		"Dear Employee,\n\n" +
		fmt.Sprintf("We are pleased to inform you that, in recognition of your outstanding performance and dedication, you have been promoted from %v to %v. ", rec.OldRole, rec.NewRole) +
		fmt.Sprintf("This promotion will be effective from %v.\n\n", rec.EffectiveDate.Format("2006-01-02")) +
		"Your new responsibilities will include greater leadership and strategic involvement in your department. We are confident that you will excel in your new role and continue to contribute significantly to the success of our organization.\n\n" +
		"Please accept our heartfelt congratulations on this achievement.\n\n" +
		fmt.Sprintf("Approved By: %v\n", approvedBy) +
		fmt.Sprintf("Remarks: %v\n", rec.Remarks) +
		"\nBest Regards,\nHR Department\nCompany Name"
	pdf.MultiCell(0, 10, body, "", "L", false)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
