package models

// Evaluation category names
const (
	CategoryGranos    = "Granos"
	CategoryGanaderia = "Ganadería"
	CategoryAltoValor = "Cultivos de Alto Valor"
)

// ScoringCatalog is the fixed, versioned rubric definition for the program.
// Point values and wording come from the SmartFarm challenge regulations and
// change only between program editions, never at runtime.
var ScoringCatalog = []ScoringCategory{
	{
		Name: CategoryGranos,
		Items: []CatalogItem{
			{
				Key:         "GR_Item_1",
				Title:       "Item 1: Organización y estandarización de lotes.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center: Configuración/ Campos / Campos / Vista tabla. Excel o PDF de vista anterior. >>Consideraciones: En el caso de organizaciones con menos del 50% fuera del estándar, la puntuación de este ítem se restablece a cero. Caso contrario se otorgará el puntaje proporcional correspondiente: 50 a 60 % 1 punto | 60 a 70 % 2 puntos | 70 a 80% 3 puntos | 80 a 90 % 4 puntos | más de 90 % 5 puntos.",
			},
			{
				Key:         "GR_Item_2",
				Title:       "Item 2: Línea de guiado.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center, de la tabla: Configuración/ Campos/ Filtro <campos sin guiado>; y Captura de pantalla desde Operations Center: Configuración/Campos/Campos totales (sin filtro aplicado). >>Consideraciones: Será requisito para obtener los 5 puntos, que el 20% de los lotes cuenten con guiado.",
			},
			{
				Key:         "GR_Item_3",
				Title:       "Item 3: Organización altamente conectada.",
				MaxPoints:   10,
				Description: "Al menos un campo con tres tipos de labores cargadas.",
			},
			{
				Key:         "GR_Item_4",
				Title:       "Item 4: Uso de planificador de trabajo.",
				MaxPoints:   15,
				Description: "Video demostrativo de los Planes de Trabajo enviados al equipo durante los últimos 12 meses, al menos 4 meses antes de la presentación de la evidencia. >>Consideraciones: En los últimos 12 meses tener al menos una operación de cada una de las 3 etapas (siembra - pulverización - cosecha) en la cual se haya utilizando el planificador de trabajo. El trabajo necesariamente debe haber sido enviado al equipo y debe tener al menos un 20% de avance. Cada etapa contabiliza 5 puntos, siendo posible acumular 15 puntos al utilizar el planificador de trabajo en las 3 etapas.",
			},
			{
				Key:         "GR_Item_5",
				Title:       "Item 5: Uso de Operations Center Mobile.",
				MaxPoints:   10,
				Description: "Grabación de video que demuestre la navegación en la plataforma Móvil, capturando la pantalla inicial y demostrando información de al menos un equipo y un mapa agronómico y la vista del planificador de trabajo. La ausencia de cualquiera de los ítems descritos anteriormente se considerará puntuación cero para este ítem; y Video del cliente mencionando los beneficios obtenidos al utilizar el Centro de Operaciones, hablando de al menos una ganancia al utilizarlo. >>Consideraciones: Al ser un testimonio auténtico y reciente creado para la evaluación de este ítem describiendo la principal funcionalidad utilizada (planificador de trabajo, alertas, analizador de campo) debe incluir un testimonio del cliente y/o miembros de su equipo. Serán descalificados los vídeos grabados que demuestren operaciones del Distribuidor y/o de terceros. Vídeo con una duración mínima de 1,5 minutos y máxima de 3 minutos.",
			},
			{
				Key:         "GR_Item_6",
				Title:       "Item 6: JDLink.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center de la pestaña Equipo, que demuestre el Servicio de Conectividad JDLink; y Captura pantalla sin fitro, donde se visualice el total de máquinas. >>Consideraciones: En el caso de organizaciones con menos del 30% de máquinas con servicio de conectividad activado, la puntuación de este ítem se restablece a cero. Se otorgará el puntaje proporcional correspondiente: 30 a 40 % 1 punto | 40 a 50% 2 puntos | 50 a 60% 3 puntos | 60 a 70 % 4 puntos | más de 70% 5 puntos. Los dispositivos pendientes de transferencia y/o inactivos no se contarán.",
			},
			{
				Key:         "GR_Item_7",
				Title:       "Item 7: Envío remoto. Mezcla de tanque.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Operations Center donde se vea una mezcla de tanque generada; o Captura de pantalla desde SIA evidenciando uso de ordenes de trabajo. >>Consideraciones: Para el caso de SIA los puntajes impactarán según se detalla a continuación: 20 a 30% 1 puntos | 30 a 40% 2 puntos | 40 a 50 % 5 puntos | más de 50% 10 puntos.",
			},
			{
				Key:         "GR_Item_8",
				Title:       "Item 8: % uso de autotrac en Tractor.",
				MaxPoints:   10,
				Description: "Captura de pantalla en analizador de máquina/ uso de tecnología donde se muestren todos los equipos de la organización. >>Consideraciones: Se solicitará en promedio, un 40% de uso de autotrac en tractores de mas de 140 hp.",
			},
			{
				Key:         "GR_Item_9",
				Title:       "Item 9: % uso autotrac Cosecha.",
				MaxPoints:   10,
				Description: "Captura de pantalla en analizador de máquina/ uso de tecnología donde se muestren todos los equipos de la organización. >>Consideraciones: Se solicitará en promedio, un 70% de uso de autotrac en cosechadoras.",
			},
			{
				Key:         "GR_Item_10",
				Title:       "Item 10: % uso autotrac Pulverización.",
				MaxPoints:   10,
				Description: "Captura de pantalla en analizador de máquina/ uso de tecnología donde se muestren todos los equipos de la organización. >>Consideraciones: Se solicitará en promedio, un 70% de uso de autotrac en pulverizadoras.",
			},
			{
				Key:         "GR_Item_11",
				Title:       "Item 11: Uso de funcionalidades avanzadas.",
				MaxPoints:   15,
				Description: "Reporte de uso de funcionalidades avanzadas: 7 Puntos | Vídeo testimonio de cliente que demuestre el uso de funcionalidades avanzadas: 8 puntos. >>Consideraciones: Sólo se considerarán videos que describan la fecha de la operación, la cual debe ser en el año agrícola en curso. El vídeo deberá registrar el testimonio por parte del cliente y/o miembros de su equipo. Serán descalificados los vídeos grabados que demuestren operaciones del Distribuidor y/o de terceros.",
			},
			{
				Key:         "GR_Item_12",
				Title:       "Item 12: Uso de tecnologías integradas.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Operations Center, que evidencie el uso de tecnologías integradas. >>Consideraciones: Combine Advisor/ActiveYield: 4 puntos | ExactApply: 3 puntos | Control de sección: 3 puntos",
			},
			{
				Key:         "GR_Item_13",
				Title:       "Item 13: Señal de corrección StarFire.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center en Analizador de máquina/uso de tecnología. >>Consideraciones: Señal de corrección StarFire y/o RTK (SF2, SF3, SF-RTK y RTK) en al menos en una etapa del ciclo productivo. Se obtendrá 1 punto extra dentro del item si se utiliza señal SF-RTK.",
			},
			{
				Key:         "GR_Item_14",
				Title:       "Item 14: Paquete CSC.",
				MaxPoints:   10,
				Description: "Factura del paquete contratado.",
			},
			{
				Key:         "GR_Item_15",
				Title:       "Item 15: Vinculación de API.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center: Configuración / Conexiones / Seleccionar la herramienta conectada / Administrar / Organizaciones conectadas. >>Consideraciones: La fecha de conexión, que debe ser mayor a 4 meses desde la fecha de envío del informe.",
			},
			{
				Key:         "GR_Item_16",
				Title:       "Item 16: JDLink en otra marca.",
				MaxPoints:   15,
				Description: "Captura de pantalla desde <Equipos> en Operations Center.",
			},
		},
	},
	{
		Name: CategoryGanaderia,
		Items: []CatalogItem{
			{
				Key:         "G_Item_1",
				Title:       "Item 1: Organización y estandarización de lotes.",
				MaxPoints:   15,
				Description: "Captura de pantalla desde Operations Center: Configuración/ Campos / Campos / Vista tabla. Excel o PDF de vista anterior. >>Consideraciones: En el caso de organizaciones con menos del 50% fuera del estándar, la puntuación de este ítem se restablece a cero. Caso contrario se otorgará el puntaje proporcional correspondiente: 50 a 60 % 1 punto | 60 a 70 % 3 puntos | 70 a 80% 9 puntos | 80 a 90 % 12 puntos | más de 90 % 15 puntos.",
			},
			{
				Key:         "G_Item_2",
				Title:       "Item 2: Digitalizar capa de siembra y mapa de picado.",
				MaxPoints:   10,
				Description: "En al menos un lote tener digitalizada la capa de siembra y mapa de picado, que se evidenciará con una Captura de pantalla en el Analizador de Trabajo con la herramienta <comparar>, en la que se muestre el mapa de siembra y el mapa de picado dentro de la campaña. >>Consideraciones: Adicional de 5 puntos si se realizó alguna labor de manera variable (siembra o fertilización). Adicional de 5 puntos si en el lote hay lineas de guiado.",
			},
			{
				Key:         "G_Item_3",
				Title:       "Item 3: Uso de planificador de trabajo.",
				MaxPoints:   20,
				Description: "En los últimos 12 meses tener al menos una operación de cada una de las 3 etapas utilizando el planificador de trabajo. >>Consideraciones: Siembra vale 6 puntos | Pulverización 7 puntos | Cosecha 7 puntos | Las 3 etapas acumulan 20 puntos.",
			},
			{
				Key:         "G_Item_4",
				Title:       "Item 4: Equipo registrados en el Centro de Operaciones.",
				MaxPoints:   5,
				Description: "Video demostrativo de la organización donde se vea dos equipos y al menos un implemento asociado a la alimentación en cargador frontal.",
			},
			{
				Key:         "G_Item_5",
				Title:       "Item 5: Operadores registrados en el Centro de Operaciones.",
				MaxPoints:   5,
				Description: "Video que demuestra el registro de al menos un empleado en la pestaña equipo en Operations Center.",
			},
			{
				Key:         "G_Item_6",
				Title:       "Item 6: Productos registrados en el Centro de Operaciones.",
				MaxPoints:   5,
				Description: "Video de la pestaña <Productos> demostrando los químicos, variedades, fertilizantes, mezcla (si se usa), con al menos un producto químico o variedad registrada.",
			},
			{
				Key:         "G_Item_7",
				Title:       "Item 7: Uso de Operations Center Mobile.",
				MaxPoints:   10,
				Description: "Grabación de video que demuestre la navegación en la plataforma Móvil, capturando la pantalla inicial y demostrando información de al menos un equipo y un mapa agronómico y la vista del planificador de trabajo. La ausencia de cualquiera de los ítems descritos anteriormente se considerará puntuación cero para este ítem; y Testimonio de cliente con el beneficio de utilizar el Centro de Operaciones mencionando los beneficios obtenidos al utilizar el Centro de Operaciones, hablando de al menos una ganancia al utilizarlo. >>Consideraciones: Al ser un testimonio auténtico y reciente creado para la evaluación de este ítem describiendo la principal funcionalidad utilizada (planificador de trabajo, alertas, analizador de campo) debe incluir un testimonio del cliente y/o miembros de su equipo. Serán descalificados los vídeos grabados que demuestren operaciones del Distribuidor y/o de terceros. Vídeo con una duración mínima de 1,5 minutos y máxima de 3 minutos.",
			},
			{
				Key:         "G_Item_8",
				Title:       "Item 8: JDLink activado en máquinas John Deere.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Operations Center de la pestaña Equipo, que demuestre el Servicio de Conectividad JDLink; y Captura pantalla sin filtro, donde se visualice el total de máquinas. >>Consideraciones: En el caso de organizaciones con menos del 30% de máquinas con servicio de conectividad activado, la puntuación de este ítem se restablece a cero. Se otorgará el puntaje proporcional correspondiente: 30 a 40 % 1 punto | 40 a 50% 2 puntos | 50 a 60% 4 puntos | 60 a 70 % 6 puntos | más de 70% 10 puntos. Los dispositivos pendientes de transferencia y/o inactivos no se contarán.",
			},
			{
				Key:         "G_Item_9",
				Title:       "Item 9: Planes de mantenimiento en tractores.",
				MaxPoints:   10,
				Description: "Captura de pantalla de los planes de mantenimiento asociado a tractores responsables de la alimentación.",
			},
			{
				Key:         "G_Item_10",
				Title:       "Item 10: Mapeo de constituyentes.",
				MaxPoints:   20,
				Description: "10 puntos con al menos un mapa de constituyentes en los últimos 12 meses. 10 puntos por testimonial de importancia de sensado de constituyentes.",
			},
			{
				Key:         "G_Item_11",
				Title:       "Item 11: Conectividad alimentación.",
				MaxPoints:   20,
				Description: "Al menos un tractor con conectividad visible en Operations Center. Evidencia captura de pantalla o video demostrando el recorrido en el patio de comida.",
			},
			{
				Key:         "G_Item_12",
				Title:       "Item 12: Generación de informes.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Archivos/ Informes donde se visualice al menos un informe de máquina generado en los últimos doce meses. La fecha debe ser mayor a 4 meses desde la fecha de envío del informe.",
			},
			{
				Key:         "G_Item_13",
				Title:       "Item 13: Paquete contratado con el concesionario (CSC).",
				MaxPoints:   10,
				Description: "Factura del paquete contratado.",
			},
		},
	},
	{
		Name: CategoryAltoValor,
		Items: []CatalogItem{
			{
				Key:         "AV_Item_1",
				Title:       "Item 1: Organización y estandarización de lotes.",
				MaxPoints:   15,
				Description: "Captura de pantalla desde Operations Center: Configuración/ Campos / Campos / Vista tabla. Excel o PDF de vista anterior. >>Consideraciones: En el caso de organizaciones con menos del 50% fuera del estándar, la puntuación de este ítem se restablece a cero. Caso contrario se otorgará el puntaje proporcional correspondiente: 50 a 60 % 1 punto | 60 a 70 % 3 puntos | 70 a 80% 9 puntos | 80 a 90 % 12 puntos | más de 90 % 15 puntos.",
			},
			{
				Key:         "AV_Item_2",
				Title:       "Item 2: Lineas de guiado.",
				MaxPoints:   5,
				Description: "Captura de pantalla desde Operations Center, de la tabla: Configuración/ Campos/ Filtro <campos sin guiado> y, Captura de pantalla desde Operations Center: Configuración/Campos/Campos totales (sin filtro aplicado). >>Consideraciones: Será requisito para obtener los 5 puntos, que el 20% de los lotes cuenten con guiado.",
			},
			{
				Key:         "AV_Item_3",
				Title:       "Item 3: Tener al menos una labor digitalizada.",
				MaxPoints:   10,
				Description: "Tener una operación digitalizada. Presentar el pdf del informe del Analizador de Trabajo de cualquier operación, ya sea preparación de suelo, siembra, pulverización o cosecha que se haya realizado.",
			},
			{
				Key:         "AV_Item_4",
				Title:       "Item 4: Uso de planificador de trabajo para alguna operación.",
				MaxPoints:   15,
				Description: "Captura de pantalla en la sección planificador de trabajo con al menos un trabajo enviado en los últimos 12 meses",
			},
			{
				Key:         "AV_Item_5",
				Title:       "Item 5: Uso del Operations Center Mobile.",
				MaxPoints:   10,
				Description: "Grabación de video que demuestre la navegación en la plataforma Móvil, capturando la pantalla inicial y demostrando información de al menos un equipo y un mapa agronómico y la vista del planificador de trabajo. La ausencia de cualquiera de los ítems descritos anteriormente se considerará puntuación cero para este ítem y, Video del cliente mencionando los beneficios obtenidos al utilizar el Centro de Operaciones, hablando de al menos una ganancia al utilizarlo. >>Consideraciones: Al ser un testimonio auténtico y reciente creado para la evaluación de este ítem describiendo la principal funcionalidad utilizada (planificador de trabajo, alertas, analizador de campo) debe incluir un testimonio del cliente y/o miembros de su equipo. Serán descalificados los vídeos grabados que demuestren operaciones del Distribuidor y/o de terceros. Vídeo con una duración mínima de 1,5 minutos y máxima de 3 minutos.",
			},
			{
				Key:         "AV_Item_6",
				Title:       "Item 6: JDLink activado en máquinas John Deere.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Operations Center de la pestaña Equipo, que demuestre el Servicio de Conectividad JDLink; y Captura pantalla sin filtro, donde se visualice el total de máquinas. >>Consideraciones: En el caso de organizaciones con menos del 30% de máquinas con servicio de conectividad activado, la puntuación de este ítem se restablece a cero. Se otorgará el puntaje proporcional correspondiente: 30 a 40 % 1 punto | 40 a 50% 2 puntos | 50 a 60% 4 puntos | 60 a 70 % 6 puntos | más de 70% 10 puntos. Los dispositivos pendientes de transferencia y/o inactivos no se contarán.",
			},
			{
				Key:         "AV_Item_7",
				Title:       "Item 7: % uso de autotrac en Tractor.",
				MaxPoints:   20,
				Description: "Captura de pantalla en analizador de máquina/ uso de tecnología donde se muestren todos los equipos de la organización. >>Consideraciones: Se solicitará en promedio, un 30% de uso de autotrac en tractores de mas de 140 hp.",
			},
			{
				Key:         "AV_Item_8",
				Title:       "Item 8: Implement Guidance.",
				MaxPoints:   20,
				Description: "Vídeo testimonio de cliente de funcionalidad avanzada. Solo se considerarán videos que describan la fecha de la operación, la cual debe ser en el año agrícola en curso. El vídeo deberá registrar el testimonio por parte del cliente y/o miembros de su equipo. Serán descalificados los vídeos grabados que demuestren operaciones del Distribuidor y/o de terceros. >>Consideraciones: Puede considerarse nivelación para México.",
			},
			{
				Key:         "AV_Item_9",
				Title:       "Item 9: Señal de corrección StarFire.",
				MaxPoints:   10,
				Description: "Captura de pantalla desde Operations Center en Analizador de máquina/uso de tecnología. >>Consideraciones: Señal de corrección StarFire y/o RTK (SF2, SF3, SF-RTK y RTK) en al menos en una etapa del ciclo productivo. Se obtendrá 1 punto extra dentro del item si se utiliza señal SF-RTK.",
			},
			{
				Key:         "AV_Item_10",
				Title:       "Item 10: Paquete contratado con el concesionario (CSC).",
				MaxPoints:   10,
				Description: "Factura del paquete contratado.",
			},
			{
				Key:         "AV_Item_11",
				Title:       "Item 11: Equipos Registrados en Operations Center.",
				MaxPoints:   5,
				Description: "Video demostrativo de la organización donde se vea dos equipos y al menos un implemento.",
			},
			{
				Key:         "AV_Item_12",
				Title:       "Item 12: Operadores registrados en Operations Center.",
				MaxPoints:   5,
				Description: "Video que demuestra el registro de al menos un empleado en la pestaña equipo en Operations Center.",
			},
			{
				Key:         "AV_Item_13",
				Title:       "Item 13: Productos registrados en el Operations Center.",
				MaxPoints:   5,
				Description: "Video de la pestaña Productos demostrando los químicos, variedades, fertilizantes, mezcla (si se usa), con al menos un producto químico o variedad registrada.",
			},
			{
				Key:         "AV_Item_14",
				Title:       "Item 14: Configuración de Alertas Personalizables.",
				MaxPoints:   10,
				Description: "Captura de pantalla de alguna alerta personalizable mostrando la fecha que debe ser mayor a 4 meses desde la fecha del envío del informe.",
			},
		},
	},
}
