package model

// Category labels resources and library documents. The set below is the
// superset of the pedagogical categories used by the teachers' list and the
// administrative ones still present on older document rows. Values outside
// the set are tolerated end to end; they simply match no styling rule in
// the front end.
type Category string

const (
	CategoryAprofundamentos Category = "Aprofundamentos"
	CategoryAvaliacao       Category = "Avaliação"
	CategoryDocumentos      Category = "Documentos"
	CategoryFerramentas     Category = "Ferramentas"
	CategoryFormacao        Category = "Formação"
	CategoryHorarios        Category = "Horários"
	CategoryLegislacao      Category = "Legislação"
	CategoryLideres         Category = "Líderes"
	CategoryMedias          Category = "Médias/Notas"
	CategoryPlanejamento    Category = "Planejamento"
	CategoryPraticas        Category = "Práticas Integradoras"
	CategoryOutros          Category = "Outros"

	// Legacy administrative categories kept for rows created before the
	// document library adopted the pedagogical set.
	CategoryAdministrativo Category = "Administrativo"
	CategoryFormularios    Category = "Formulários"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryAprofundamentos,
	CategoryAvaliacao,
	CategoryDocumentos,
	CategoryFerramentas,
	CategoryFormacao,
	CategoryHorarios,
	CategoryLegislacao,
	CategoryLideres,
	CategoryMedias,
	CategoryPlanejamento,
	CategoryPraticas,
	CategoryOutros,
	CategoryAdministrativo,
	CategoryFormularios,
}
