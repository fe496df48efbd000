package catalog

import (
	"fmt"

	"normativa/internal/model"
)

// Identificacion builds the company identification chapter
func Identificacion(d model.ReglamentoData) model.Section {
	dom := d.DomicilioCompleto()

	rubro := NormalizarRubro(d)
	giro := safe(d.Giro)
	fraseActividad := "en el rubro de " + rubro
	if giro != "" {
		fraseActividad += ", dedicándose específicamente a " + giro
	}

	razonSocial := safe(d.RazonSocial)
	if razonSocial == "" {
		razonSocial = "la empresa"
	}
	rut := safe(d.RutEmpresa)
	if rut == "" {
		rut = "[pendiente]"
	}
	giroClause := giro
	if giroClause == "" {
		giroClause = "actividades propias de su objeto social"
	}

	content := []model.ContentItem{}

	first := fmt.Sprintf("El presente Reglamento Interno de Orden, Higiene y Seguridad se dicta en cumplimiento de la normativa laboral chilena y será de aplicación en %s, RUT %s, cuyo giro comercial corresponde a %s.", razonSocial, rut, giroClause)
	if dom != "" {
		first += fmt.Sprintf(" La organización tiene su domicilio en %s.", dom)
	}
	content = append(content, art(first))

	if safe(d.NombreCompleto) != "" {
		rutRepr := ""
		if safe(d.RutRepresentante) != "" && safe(d.RutRepresentante) != safe(d.RutEmpresa) {
			rutRepr = fmt.Sprintf(", RUT %s,", d.RutRepresentante)
		}
		cargoRepr := ""
		if safe(d.Cargo) != "" {
			cargoRepr = fmt.Sprintf(" en calidad de %s,", d.Cargo)
		}
		content = append(content, art(fmt.Sprintf("La representación legal es ejercida por don(ña) %s%s%s con plenas facultades para obligar a la organización en los términos de este instrumento.", d.NombreCompleto, rutRepr, cargoRepr)))
	} else {
		content = append(content, art("La representación legal de la empresa será ejercida por quien conste como tal en los registros públicos correspondientes, con plenas facultades para obligar a la organización en los términos de este instrumento."))
	}

	trabajadores := safe(d.NumTrabajadores)
	if trabajadores == "" {
		trabajadores = "trabajadores"
	}
	tercero := fmt.Sprintf("La organización desarrolla sus actividades %s y cuenta actualmente con un rango de %s sujetos al presente Reglamento.", fraseActividad, trabajadores)
	if safe(d.Mutualidad) != "" {
		tercero += fmt.Sprintf(" Se encuentra adherida a %s como organismo administrador del seguro contra riesgos de accidentes del trabajo y enfermedades profesionales.", d.Mutualidad)
	}
	content = append(content, art(tercero))

	content = append(content, art("Para todos los efectos legales y administrativos derivados de este instrumento, las comunicaciones, notificaciones y requerimientos se realizarán desde el domicilio indicado precedentemente, o a través de los medios electrónicos que la administración habilite para tal fin."))

	return model.Section{Title: "IDENTIFICACIÓN DE LA EMPRESA", Content: content}
}

// AmbitoAplicacion builds the scope-of-application chapter. The final
// article names the supervising authorities and is the single clause
// the flexible-wording flag rewrites.
func AmbitoAplicacion(d model.ReglamentoData) model.Section {
	autoridades := "al Ministerio de Salud y a la Inspección del Trabajo correspondiente"
	if d.FlexibleLegalWording {
		autoridades = "la autoridad sanitaria y a la autoridad laboral respectivas"
	}

	return model.Section{
		Title: "ÁMBITO DE APLICACIÓN",
		Content: []model.ContentItem{
			art("El presente Reglamento es aplicable a todos los trabajadores de la organización, sin distinción de cargo, función, antigüedad, modalidad contractual o lugar de prestación de servicios, desde la fecha de inicio de su relación laboral hasta su término, cualquiera sea la causa de este."),
			art("Las disposiciones contenidas en este instrumento obligan tanto a los trabajadores contratados bajo la modalidad de contrato indefinido como a aquellos con contrato a plazo fijo, por obra o faena, a tiempo parcial, en régimen de subcontratación, o bajo cualquier otra forma de vinculación laboral reconocida por la ley."),
			art("El desconocimiento de las normas aquí establecidas no eximirá de responsabilidad a quien las contravenga. La administración se obliga a difundir adecuadamente el contenido de este Reglamento, proporcionando a cada trabajador un ejemplar al momento de su contratación y dejando constancia escrita de su recepción."),
			art("Las disposiciones de este Reglamento se entenderán complementarias y no sustitutivas de las normas legales, los contratos individuales y colectivos de trabajo, y las demás regulaciones internas que se dicten en uso de las facultades de administración. En caso de conflicto, prevalecerán las normas de mayor jerarquía."),
			art(fmt.Sprintf("Corresponderá a la administración remitir copia de este Reglamento a %s dentro del plazo legal, contado desde la fecha de su entrada en vigencia.", autoridades)),
		},
	}
}

// Principios builds the general principles chapter
func Principios(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "PRINCIPIOS GENERALES",
		Content: []model.ContentItem{
			plain("Los principios que se enuncian a continuación constituyen el fundamento ético y normativo sobre el cual se construyen las relaciones laborales al interior de la organización."),
			art("Las relaciones laborales se fundan en los principios de buena fe, respeto mutuo, colaboración y cumplimiento de las obligaciones recíprocas que emanan de la ley y del contrato de trabajo. Se espera de cada trabajador una conducta acorde con estos valores."),
			art("Se reconoce y garantiza a todos los trabajadores el ejercicio pleno de sus derechos fundamentales, en particular el derecho a la integridad física y psíquica, la no discriminación, la libertad de conciencia, la protección de la vida privada y la honra personal, conforme a lo dispuesto en la Constitución y las leyes."),
			art("Todo trabajador tiene derecho a desempeñar sus funciones en un ambiente laboral libre de violencia, acoso y discriminación. La administración adoptará las medidas preventivas y correctivas necesarias para resguardar la dignidad de las personas y promover relaciones laborales armónicas."),
			art("Se velará por la igualdad de oportunidades en el acceso al empleo, la capacitación, la promoción y las condiciones de trabajo, prohibiendo toda forma de discriminación que no se base en la capacidad profesional o idoneidad personal del trabajador."),
			art("Estos principios informan la interpretación y aplicación de todas las normas contenidas en el presente Reglamento y deberán ser observados por empleadores y trabajadores en el ejercicio de sus respectivos derechos y obligaciones."),
		},
	}
}

// DerechosEmpleador builds the employer rights chapter
func DerechosEmpleador(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "DERECHOS Y FACULTADES DEL EMPLEADOR",
		Content: []model.ContentItem{
			plain("Sin perjuicio de los derechos que asisten a los trabajadores, el empleador conserva las prerrogativas de dirección y administración que la ley le confiere."),
			art("En ejercicio de su potestad de dirección, el empleador tiene la facultad de organizar, planificar y dirigir las actividades productivas, distribuyendo las funciones y tareas entre sus trabajadores conforme a las necesidades del negocio y respetando en todo momento la dignidad de las personas."),
			art("Corresponderá a la administración determinar la forma, condiciones y oportunidad del trabajo, establecer turnos y horarios de funcionamiento, efectuar las adecuaciones organizacionales que sean necesarias, y designar a los trabajadores en los puestos que estime convenientes."),
			art("Será facultad del empleador modificar las condiciones de trabajo en la medida que se ajusten al ius variandi reconocido por la ley, sin que ello implique menoscabo de los derechos del trabajador ni alteración sustancial de las condiciones pactadas."),
			art("Es derecho del empleador exigir de sus trabajadores el cumplimiento íntegro de las obligaciones pactadas, el respeto a las normas de este Reglamento, y la observancia de las instrucciones que se impartan para el correcto desempeño de las labores y la buena marcha de la organización."),
			art("La administración podrá establecer sistemas de control y evaluación del desempeño, implementar tecnologías para la gestión de asistencia y productividad, y adoptar las medidas internas que considere adecuadas, siempre dentro del marco legal vigente y con pleno respeto a los derechos fundamentales de los trabajadores."),
		},
	}
}

// ObligacionesTrabajador builds the worker duties chapter
func ObligacionesTrabajador(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "OBLIGACIONES DEL TRABAJADOR",
		Content: []model.ContentItem{
			plain("En el marco de la relación laboral, los trabajadores asumen las siguientes obligaciones esenciales, cuyo cumplimiento resulta indispensable para la buena marcha de la organización."),
			art("Son obligaciones esenciales de todo trabajador: cumplir fielmente con las estipulaciones de su contrato de trabajo, desempeñar las funciones asignadas con diligencia, responsabilidad y dedicación, respetar las instrucciones legítimas de sus superiores jerárquicos, y mantener una conducta compatible con la buena convivencia laboral."),
			art("Cada trabajador deberá presentarse a sus labores en condiciones físicas y mentales adecuadas para el desempeño seguro de sus funciones, manteniendo su lugar de trabajo limpio y ordenado, y utilizando correctamente los equipos, herramientas y materiales que le sean proporcionados."),
			art("Todos los trabajadores están obligados a guardar confidencialidad respecto de toda información comercial, técnica, financiera, estratégica y de clientes a la que tengan acceso en razón de su cargo, tanto durante la vigencia de la relación laboral como con posterioridad a su término."),
			art("Es deber de todo trabajador informar oportunamente a su jefe directo de cualquier anomalía, desperfecto, situación de riesgo, accidente o cuasi accidente que detecte en el desempeño de sus funciones, así como de cualquier impedimento para asistir a su trabajo o cumplir con sus obligaciones."),
			art("Los trabajadores deberán participar en las actividades de capacitación, inducción y entrenamiento que la organización disponga, especialmente aquellas relacionadas con la prevención de riesgos laborales, el cumplimiento normativo y el desarrollo de competencias para el ejercicio de sus funciones."),
			art("Todo trabajador deberá conducirse con respeto, cortesía y profesionalismo hacia sus compañeros de trabajo, superiores, subordinados, clientes, proveedores y cualquier persona con la que interactúe en el contexto de sus funciones laborales."),
		},
	}
}

// Jornada builds the working-hours chapter
func Jornada(d model.ReglamentoData) model.Section {
	jornada := safe(d.JornadaGeneral)
	if jornada == "" {
		jornada = "la jornada establecida en el contrato individual de trabajo"
	}

	content := []model.ContentItem{
		plain("En concordancia con las facultades de organización del empleador, la jornada laboral se regirá por las disposiciones que se establecen a continuación."),
		art(fmt.Sprintf("La jornada ordinaria de trabajo será de %s. La distribución de la jornada, los turnos y los descansos dentro de ella se establecerán conforme a las necesidades operativas, respetando en todo caso los límites máximos legales.", jornada)),
		art("La jornada ordinaria no podrá exceder de cuarenta y cuatro horas semanales, distribuidas en no más de seis ni menos de cinco días, conforme a la reducción progresiva establecida por la ley. Esta jornada máxima continuará disminuyendo gradualmente según el calendario legal, hasta alcanzar las cuarenta horas semanales. La jornada diaria no superará las diez horas, salvo los casos de distribución excepcional que la ley autoriza. Se garantizará un descanso semanal de al menos un día, preferentemente el domingo."),
		art("Las horas extraordinarias solo podrán pactarse para atender necesidades o situaciones temporales. Deberán constar por escrito, no excederán de dos horas por día, y se remunerarán con un recargo del cincuenta por ciento sobre el sueldo convenido para la jornada ordinaria."),
	}

	if d.ControlAsistencia == "si" {
		content = append(content, art("La organización mantendrá un sistema de control de asistencia mediante el cual todo trabajador deberá registrar personalmente su hora de ingreso y salida de forma diaria. Queda estrictamente prohibido registrar la asistencia en nombre de otro. El registro fraudulento será considerado falta grave que podrá dar lugar a la terminación del contrato."))
	} else {
		content = append(content, art("El control de la asistencia y la puntualidad se realizará mediante los mecanismos que la administración disponga, los cuales deberán ajustarse a la normativa laboral vigente. Cada trabajador es responsable de cumplir estrictamente con los horarios establecidos en su contrato y en las instrucciones internas."))
	}

	content = append(content,
		art("Los atrasos e inasistencias injustificadas facultarán al empleador para aplicar los descuentos de remuneraciones que procedan conforme a la ley, sin perjuicio de las medidas disciplinarias que correspondan según la gravedad y reiteración de la falta. El trabajador deberá justificar documentalmente toda ausencia dentro de las veinticuatro horas siguientes."),
		art("Los trabajadores tendrán derecho a un descanso para colación de al menos treinta minutos dentro de la jornada, el cual no se considerará como tiempo trabajado. La administración podrá establecer turnos escalonados de colación cuando la naturaleza de las operaciones así lo requiera."),
	)

	return model.Section{Title: "JORNADA DE TRABAJO Y DESCANSOS", Content: content}
}
