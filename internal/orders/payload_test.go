package orders

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadAcceptsDocument(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{"cabecalho":{"CODPARC":101}}`), &p))
	require.True(t, p.Valid())

	doc, ok := p.Document()
	require.True(t, ok)
	assert.JSONEq(t, `{"cabecalho":{"CODPARC":101}}`, string(doc))
}

func TestPayloadAcceptsEncodedString(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`"{\"cabecalho\":{\"NOMEPARC\":\"Mercado Azul\"}}"`), &p))
	require.True(t, p.Valid())

	doc, ok := p.Document()
	require.True(t, ok)
	assert.JSONEq(t, `{"cabecalho":{"NOMEPARC":"Mercado Azul"}}`, string(doc))
}

func TestPayloadKeepsMalformedStringVerbatim(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`"not json at all"`), &p))
	assert.False(t, p.Valid())

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t, `"not json at all"`, string(out))
}

func TestPayloadNull(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	assert.False(t, p.Valid())
}

func TestPayloadRoundTripsDocument(t *testing.T) {
	var p Payload
	in := `{"itens":[{"CODPROD":7,"QTDNEG":2}]}`
	require.NoError(t, json.Unmarshal([]byte(in), &p))

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestPartnerNamePrefersLegalName(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"legal name wins", `{"cabecalho":{"RAZAOSOCIAL":"Aurora LTDA","NOMEPARC":"Aurora"}}`, "Aurora LTDA"},
		{"display name fallback", `{"cabecalho":{"NOMEPARC":"Aurora"}}`, "Aurora"},
		{"no header", `{"itens":[]}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Payload
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, tc.want, p.PartnerName())
		})
	}
}

func TestPartnerNameMalformedPayload(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`"{{broken"`), &p))
	assert.Equal(t, "", p.PartnerName())
}
