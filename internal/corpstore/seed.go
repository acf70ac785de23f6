package corpstore

import "github.com/sells-group/dart-analysis/internal/model"

// SeedCorporations is the fallback registry used when no corp-code dump is
// configured. It covers the large listed companies so search and lookup
// keep working out of the box.
func SeedCorporations() []model.Corporation {
	return []model.Corporation{
		{CorpCode: "00126380", CorpName: "삼성전자", CorpEngName: "Samsung Electronics Co., Ltd.", StockCode: "005930", ModifyDate: "20231231"},
		{CorpCode: "00164779", CorpName: "SK하이닉스", CorpEngName: "SK hynix Inc.", StockCode: "000660", ModifyDate: "20231231"},
		{CorpCode: "00164780", CorpName: "LG에너지솔루션", CorpEngName: "LG Energy Solution, Ltd.", StockCode: "373220", ModifyDate: "20231231"},
		{CorpCode: "00164781", CorpName: "현대자동차", CorpEngName: "Hyundai Motor Company", StockCode: "005380", ModifyDate: "20231231"},
		{CorpCode: "00164782", CorpName: "기아", CorpEngName: "Kia Corporation", StockCode: "000270", ModifyDate: "20231231"},
		{CorpCode: "00164783", CorpName: "POSCO홀딩스", CorpEngName: "POSCO Holdings Inc.", StockCode: "005490", ModifyDate: "20231231"},
		{CorpCode: "00164784", CorpName: "NAVER", CorpEngName: "NAVER Corporation", StockCode: "035420", ModifyDate: "20231231"},
		{CorpCode: "00164785", CorpName: "카카오", CorpEngName: "Kakao Corporation", StockCode: "035720", ModifyDate: "20231231"},
		{CorpCode: "00164786", CorpName: "LG화학", CorpEngName: "LG Chem, Ltd.", StockCode: "051910", ModifyDate: "20231231"},
		{CorpCode: "00164787", CorpName: "삼성바이오로직스", CorpEngName: "Samsung Biologics Co., Ltd.", StockCode: "207940", ModifyDate: "20231231"},
		{CorpCode: "00164788", CorpName: "삼성SDI", CorpEngName: "Samsung SDI Co., Ltd.", StockCode: "006400", ModifyDate: "20231231"},
		{CorpCode: "00164789", CorpName: "현대모비스", CorpEngName: "Hyundai Mobis Co., Ltd.", StockCode: "012330", ModifyDate: "20231231"},
		{CorpCode: "00164790", CorpName: "LG전자", CorpEngName: "LG Electronics Inc.", StockCode: "066570", ModifyDate: "20231231"},
		{CorpCode: "00164791", CorpName: "삼성생명", CorpEngName: "Samsung Life Insurance Co., Ltd.", StockCode: "032830", ModifyDate: "20231231"},
		{CorpCode: "00164792", CorpName: "KB금융", CorpEngName: "KB Financial Group Inc.", StockCode: "105560", ModifyDate: "20231231"},
		{CorpCode: "00164793", CorpName: "신한지주", CorpEngName: "Shinhan Financial Group Co., Ltd.", StockCode: "055550", ModifyDate: "20231231"},
		{CorpCode: "00164794", CorpName: "하나금융지주", CorpEngName: "Hana Financial Group Inc.", StockCode: "086790", ModifyDate: "20231231"},
		{CorpCode: "00164795", CorpName: "우리금융지주", CorpEngName: "Woori Financial Group Inc.", StockCode: "316140", ModifyDate: "20231231"},
		{CorpCode: "00164796", CorpName: "NH투자증권", CorpEngName: "NH Investment & Securities Co., Ltd.", StockCode: "005940", ModifyDate: "20231231"},
		{CorpCode: "00164797", CorpName: "미래에셋증권", CorpEngName: "Mirae Asset Securities Co., Ltd.", StockCode: "006800", ModifyDate: "20231231"},
		{CorpCode: "00164799", CorpName: "대우건설", CorpEngName: "Daewoo Engineering & Construction Co., Ltd.", StockCode: "047040", ModifyDate: "20231231"},
		{CorpCode: "00164800", CorpName: "GS건설", CorpEngName: "GS Engineering & Construction Corp.", StockCode: "006360", ModifyDate: "20231231"},
		{CorpCode: "00164801", CorpName: "현대건설", CorpEngName: "Hyundai Engineering & Construction Co., Ltd.", StockCode: "000720", ModifyDate: "20231231"},
		{CorpCode: "00164802", CorpName: "포스코퓨처엠", CorpEngName: "POSCO Future M Co., Ltd.", StockCode: "003670", ModifyDate: "20231231"},
		{CorpCode: "00164803", CorpName: "LG디스플레이", CorpEngName: "LG Display Co., Ltd.", StockCode: "034220", ModifyDate: "20231231"},
		{CorpCode: "00164804", CorpName: "삼성전기", CorpEngName: "Samsung Electro-Mechanics Co., Ltd.", StockCode: "009150", ModifyDate: "20231231"},
		{CorpCode: "00164805", CorpName: "아모레퍼시픽", CorpEngName: "Amorepacific Corporation", StockCode: "090430", ModifyDate: "20231231"},
		{CorpCode: "00164806", CorpName: "LG생활건강", CorpEngName: "LG Household & Health Care Ltd.", StockCode: "051900", ModifyDate: "20231231"},
		{CorpCode: "00164807", CorpName: "CJ대한통운", CorpEngName: "CJ Logistics Corporation", StockCode: "000120", ModifyDate: "20231231"},
		{CorpCode: "00164810", CorpName: "KT", CorpEngName: "KT Corporation", StockCode: "030200", ModifyDate: "20231231"},
		{CorpCode: "00164811", CorpName: "SK텔레콤", CorpEngName: "SK Telecom Co., Ltd.", StockCode: "017670", ModifyDate: "20231231"},
		{CorpCode: "00164812", CorpName: "LG유플러스", CorpEngName: "LG Uplus Corp.", StockCode: "032640", ModifyDate: "20231231"},
	}
}
