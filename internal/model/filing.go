package model

// StatementType identifies which financial statement a line item belongs to,
// using the sj_div codes from the disclosure API.
type StatementType string

const (
	StatementBalanceSheet        StatementType = "BS"
	StatementIncome              StatementType = "IS"
	StatementComprehensiveIncome StatementType = "CIS"
	StatementCashFlow            StatementType = "CF"
)

// Consolidation distinguishes individual (OFS) from consolidated (CFS)
// statement variants.
type Consolidation string

const (
	ConsolidationIndividual   Consolidation = "OFS"
	ConsolidationConsolidated Consolidation = "CFS"
)

// ReportCode is a DART report type code.
type ReportCode string

const (
	ReportBusiness ReportCode = "11011" // annual business report
	ReportHalf     ReportCode = "11012"
	ReportQ1       ReportCode = "11013"
	ReportQ3       ReportCode = "11014"
)

// LineItem is a single labeled financial fact within a filing. Amounts are
// kept as the raw upstream strings; parsing happens during classification.
type LineItem struct {
	AccountName   string        `json:"account_nm"`
	Statement     StatementType `json:"sj_div"`
	Consolidation Consolidation `json:"fs_div"`
	CurrentAmount string        `json:"thstrm_amount"`
	PriorAmount   string        `json:"frmtrm_amount,omitempty"`
}

// FilingInfo carries the reporting-period metadata echoed back to clients.
type FilingInfo struct {
	FiscalYear string     `json:"bsns_year"`
	StockCode  string     `json:"stock_code"`
	ReportCode ReportCode `json:"reprt_code"`
	ReceiptNo  string     `json:"rcept_no,omitempty"`
}

// Filing is the full disclosure response for one (company, fiscal year,
// report type). Item order is preserved from the upstream response;
// classification depends on it.
type Filing struct {
	CorpCode string
	Info     FilingInfo
	Items    []LineItem
}
