package corpstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpXML = `<?xml version="1.0" encoding="UTF-8"?>
<result>
	<list>
		<corp_code>00126380</corp_code>
		<corp_name>삼성전자</corp_name>
		<corp_eng_name>SAMSUNG ELECTRONICS CO,.LTD</corp_eng_name>
		<stock_code> 005930 </stock_code>
		<modify_date>20240102</modify_date>
	</list>
	<list>
		<corp_code>00164742</corp_code>
		<corp_name>현대자동차</corp_name>
		<corp_eng_name></corp_eng_name>
		<stock_code>005380</stock_code>
		<modify_date>20230911</modify_date>
	</list>
	<list>
		<corp_code></corp_code>
		<corp_name>코드없는회사</corp_name>
		<stock_code> </stock_code>
		<modify_date>20230911</modify_date>
	</list>
</result>`

func TestReadCorpXML(t *testing.T) {
	corps, err := readCorpXML(strings.NewReader(sampleCorpXML))
	require.NoError(t, err)
	require.Len(t, corps, 2)

	assert.Equal(t, "00126380", corps[0].CorpCode)
	assert.Equal(t, "삼성전자", corps[0].CorpName)
	// Whitespace around fields is trimmed.
	assert.Equal(t, "005930", corps[0].StockCode)

	assert.Equal(t, "현대자동차", corps[1].CorpName)
	assert.Empty(t, corps[1].CorpEngName)
}

func TestReadCorpXML_Malformed(t *testing.T) {
	_, err := readCorpXML(strings.NewReader("<result><list><corp_code>x</list>"))
	assert.Error(t, err)
}

func TestLoadCorpFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CORPCODE.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpXML), 0644))

	corps, err := LoadCorpFile(path)
	require.NoError(t, err)
	assert.Len(t, corps, 2)
}

func TestLoadCorpFile_Missing(t *testing.T) {
	_, err := LoadCorpFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}
