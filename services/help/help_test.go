package help

import (
	"testing"

	"servineo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGuide(t *testing.T) *Guide {
	t.Helper()
	g, err := Default()
	require.NoError(t, err)
	return g
}

func TestDefaultGuideShape(t *testing.T) {
	g := defaultGuide(t)
	keys := []string{}
	for _, c := range g.Categories() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"inicio", "guia-uso", "como-funciona", "cuenta-perfil", "seguridad", "faqs", "soporte"}, keys)

	inicio, err := g.Category("inicio")
	require.NoError(t, err)
	page, ok := inicio.Content.(models.DirectPage)
	require.True(t, ok)
	require.Len(t, page.Page.Entries, 3)
	tour := page.Page.Entries[2]
	require.Len(t, tour.Actions, 1)
	assert.Equal(t, "show-tutorial", tour.Actions[0].Event)

	guia, err := g.Category("guia-uso")
	require.NoError(t, err)
	list, ok := guia.Content.(models.SubItemList)
	require.True(t, ok)
	assert.Len(t, list.Items, 3)
}

func TestLoadRejectsAmbiguousCategories(t *testing.T) {
	_, err := Load([]byte(`
categories:
  - key: a
    title: A
    page: {id: p, title: P, accordions: []}
    items:
      - {id: i, title: I, page: {id: q, title: Q, accordions: []}}
`))
	assert.Error(t, err)

	_, err = Load([]byte(`
categories:
  - key: a
    title: A
`))
	assert.Error(t, err)

	_, err = Load([]byte("categories: [{key: a, title: A, page: {id: p, title: P}}, {key: a, title: B, page: {id: q, title: Q}}]"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "calificacion", Normalize("Calificación"))
	assert.Equal(t, "unete", Normalize("Únete"))
	assert.Equal(t, "¿que es servineo?", Normalize("¿Qué es Servineo?"))
}

func TestSearchIgnoresDiacritics(t *testing.T) {
	g := defaultGuide(t)

	accented := g.Search("calificación")
	plain := g.Search("calificacion")
	require.NotEmpty(t, accented)
	assert.Equal(t, accented, plain)

	var found bool
	for _, r := range plain {
		if r.ContextID == "page-para-clientes-calificar-servicio" {
			found = true
			assert.Equal(t, "Guía de uso de Servineo › Guía para clientes", r.Breadcrumb())
			assert.Equal(t, "para-clientes", r.ItemID)
		}
	}
	assert.True(t, found)

	assert.NotEmpty(t, g.Search("MENSAJERIA"))
}

func TestSearchMatchesBulletsAcrossTree(t *testing.T) {
	g := defaultGuide(t)
	results := g.Search("soporte@servineo")
	require.Len(t, results, 1)
	assert.Equal(t, "soporte", results[0].CategoryKey)
	assert.Equal(t, "p-cont-canales", results[0].ContextID)

	assert.Empty(t, g.Search("   "))
	assert.Empty(t, g.Search("zzzz-no-such-text"))
}

func TestNavigatorCategories(t *testing.T) {
	n := NewNavigator(defaultGuide(t))

	v := n.View()
	assert.Equal(t, "inicio", v.ActiveCategory)
	require.NotNil(t, v.Page)
	assert.Equal(t, "guia-inicio-page", v.Page.ID)

	require.NoError(t, n.SelectCategory("guia-uso"))
	v = n.View()
	assert.Equal(t, []string{"guia-uso"}, v.Expanded)
	require.NotNil(t, v.Page)
	assert.Equal(t, "page-que-es", v.Page.ID)

	require.NoError(t, n.SelectCategory("guia-uso"))
	assert.Empty(t, n.View().Expanded)

	assert.ErrorIs(t, n.SelectCategory("nope"), ErrUnknownCategory)
}

func TestNavigatorSubItemKeepsFolderOpen(t *testing.T) {
	n := NewNavigator(defaultGuide(t))
	require.NoError(t, n.SelectSubItem("como-funciona", "mensajeria"))
	require.NoError(t, n.SelectSubItem("como-funciona", "sistema-calificaciones"))

	v := n.View()
	assert.Equal(t, []string{"como-funciona"}, v.Expanded)
	assert.Equal(t, "sistema-calificaciones", v.ActiveItemID)
	assert.Equal(t, "p-calificaciones", v.Page.ID)

	assert.ErrorIs(t, n.SelectSubItem("como-funciona", "nope"), ErrUnknownItem)
	assert.ErrorIs(t, n.SelectSubItem("faqs", "x"), ErrNotAFolder)
}

func TestNavigatorSearchOpensFirstResult(t *testing.T) {
	n := NewNavigator(defaultGuide(t))
	results := n.Search("calificar")
	require.NotEmpty(t, results)

	v := n.View()
	assert.Equal(t, results[0].ContextID, v.OpenEntry)
	assert.Nil(t, v.Page)

	n.ToggleEntry(results[0].ContextID)
	assert.Empty(t, n.View().OpenEntry)

	require.NoError(t, n.SelectCategory("faqs"))
	v = n.View()
	assert.Empty(t, v.Query)
	assert.Equal(t, "p-faqs", v.Page.ID)
}

func TestSummaries(t *testing.T) {
	s := defaultGuide(t).Summaries()
	require.Len(t, s, 7)
	assert.False(t, s[0].HasItems)
	assert.True(t, s[1].HasItems)
	assert.Equal(t, models.HelpItemTitle{ID: "que-es-servineo", Title: "¿Qué es Servineo?"}, s[1].Items[0])
}
