package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

var pdfEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)

// payslipLines lays out the payslip text, one entry per printed line.
func payslipLines(p Payroll, currency string) []string {
	name := p.EmployeeID.String()
	number := ""
	if p.Employee != nil {
		name = p.Employee.FullName
		number = p.Employee.EmployeeNumber
	}

	lines := []string{
		"SLIP GAJI / PAYSLIP",
		fmt.Sprintf("Period: %s (%s - %s)", p.Period, p.PeriodStart.Format(dateLayout), p.PeriodEnd.Format(dateLayout)),
		fmt.Sprintf("Employee: %s %s", name, number),
		"",
		"Earnings",
	}
	for _, it := range p.Items {
		if it.ItemType == ItemEarning {
			lines = append(lines, fmt.Sprintf("  %-32s %s %d", it.Name, currency, it.Amount))
		}
	}
	lines = append(lines, fmt.Sprintf("  %-32s %s %d", "Gross", currency, p.GrossSalary), "", "Deductions")
	for _, it := range p.Items {
		if it.ItemType == ItemDeduction {
			lines = append(lines, fmt.Sprintf("  %-32s %s %d", it.Name, currency, it.Amount))
		}
	}
	lines = append(lines,
		fmt.Sprintf("  %-32s %s %d", "Income tax", currency, p.Tax),
		"",
		fmt.Sprintf("Net pay: %s %d", currency, p.NetSalary),
		fmt.Sprintf("Status: %s", p.Status),
	)
	return lines
}

// renderPDF writes a single-page PDF 1.4 document with Helvetica text.
func renderPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var text strings.Builder
	text.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		if i > 0 {
			text.WriteString("T* ")
		}
		fmt.Fprintf(&text, "(%s) Tj\n", pdfEscaper.Replace(line))
	}
	text.WriteString("ET")
	stream := text.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes()
}
