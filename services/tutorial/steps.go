package tutorial

import "servineo/models"

// DefaultSteps is the home page tour, in display order.
var DefaultSteps = []models.TutorialStep{
	{
		ID:                1,
		Title:             "Paso 1 de 6: Barra de búsqueda",
		Description:       "Aquí puedes buscar cualquier servicio que necesites. Escribe lo que buscas y encuentra Fixers calificados en segundos.",
		TargetElementKey:  "search-bar",
		PreferredPosition: models.PositionBottom,
	},
	{
		ID:                5,
		Title:             "Paso 2 de 6: Ser Fixer",
		Description:       "¿Quieres ofrecer tus servicios? Haz clic aquí para convertirte en Fixer y comenzar a generar ingresos con tus habilidades profesionales.",
		TargetElementKey:  "become-fixer",
		PreferredPosition: models.PositionBottom,
	},
	{
		ID:                4,
		Title:             "Paso 3 de 6: Trabajos recientes",
		Description:       "Revisa tus trabajos anteriores y los comentarios de otros usuarios. Mantén un historial organizado de todos tus servicios.",
		TargetElementKey:  "recent-jobs",
		PreferredPosition: models.PositionTop,
	},
	{
		ID:                3,
		Title:             "Paso 4 de 6: Agendar servicio",
		Description:       "Programa tus servicios fácilmente. Selecciona fecha, hora y describe lo que necesitas. Los Fixers confirmarán su disponibilidad.",
		TargetElementKey:  "quick-actions",
		PreferredPosition: models.PositionBottom,
	},
	{
		ID:                6,
		Title:             "Paso 5 de 6: Video Tutorial",
		Description:       "Mira nuestro video tutorial para aprender todo sobre cómo ser Fixer y aprovechar al máximo nuestra plataforma.",
		TargetElementKey:  "tutorial-video",
		PreferredPosition: models.PositionTop,
	},
	{
		ID:                2,
		Title:             "Paso 6 de 6: Soporte",
		Description:       "¿Tienes preguntas? Nuestro equipo de soporte está aquí para ayudarte 24/7. Encuentra nuestros contactos en el footer de la página.",
		TargetElementKey:  "support-section",
		PreferredPosition: models.PositionTop,
	},
}
