package corpstore

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/dart-analysis/internal/model"
)

// corpEntry mirrors one <list> element of the DART corp-code dump.
type corpEntry struct {
	CorpCode    string `xml:"corp_code"`
	CorpName    string `xml:"corp_name"`
	CorpEngName string `xml:"corp_eng_name"`
	StockCode   string `xml:"stock_code"`
	ModifyDate  string `xml:"modify_date"`
}

// LoadCorpFile parses a DART corp-code XML dump (the unzipped CORPCODE.xml)
// into corporations. Entries without a corp_code or corp_name are skipped;
// whitespace-only fields are treated as empty. The dump holds ~100k entries
// so the file is decoded as a token stream rather than read whole.
func LoadCorpFile(path string) ([]model.Corporation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "corpstore: open corp file %s", path)
	}
	defer f.Close()

	corps, err := readCorpXML(f)
	if err != nil {
		return nil, eris.Wrapf(err, "corpstore: parse corp file %s", path)
	}
	return corps, nil
}

func readCorpXML(r io.Reader) ([]model.Corporation, error) {
	dec := xml.NewDecoder(r)
	var corps []model.Corporation

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "list" {
			continue
		}

		var e corpEntry
		if err := dec.DecodeElement(&e, &start); err != nil {
			return nil, err
		}

		c := model.Corporation{
			CorpCode:    strings.TrimSpace(e.CorpCode),
			CorpName:    strings.TrimSpace(e.CorpName),
			CorpEngName: strings.TrimSpace(e.CorpEngName),
			StockCode:   strings.TrimSpace(e.StockCode),
			ModifyDate:  strings.TrimSpace(e.ModifyDate),
		}
		if c.CorpCode == "" || c.CorpName == "" {
			continue
		}
		corps = append(corps, c)
	}
	return corps, nil
}
