package model

// Corporation is one row of the DART corp-code registry.
type Corporation struct {
	CorpCode    string `json:"corp_code"`
	CorpName    string `json:"corp_name"`
	CorpEngName string `json:"corp_eng_name,omitempty"`
	StockCode   string `json:"stock_code,omitempty"`
	ModifyDate  string `json:"modify_date,omitempty"`
}
