package catalog

import (
	"fmt"

	"normativa/internal/model"
)

// NormasInternas builds the conduct rules and prohibitions chapter
// from the selected prohibition codes
func NormasInternas(d model.ReglamentoData) model.Section {
	content := []model.ContentItem{
		plain("Complementando las obligaciones establecidas en los capítulos precedentes, se establecen las siguientes normas de conducta y prohibiciones específicas."),
		art("Todo trabajador deberá observar una conducta de respeto, honestidad y colaboración en sus relaciones laborales, contribuyendo activamente a mantener un ambiente de trabajo armónico, seguro y productivo. La convivencia laboral es responsabilidad compartida de todos los integrantes de la organización."),
	}

	if len(d.Prohibiciones) > 0 {
		content = append(content, plain("Se prohíbe expresamente a todo trabajador incurrir en las siguientes conductas:"))
		for _, code := range d.Prohibiciones {
			if texto, ok := ProhibicionText(code); ok {
				content = append(content, art(texto))
			}
		}
	}

	// Fewer than four selections get generic complements so the
	// chapter never ends up skeletal
	if len(d.Prohibiciones) < 4 {
		content = append(content,
			art("Con independencia de las prohibiciones anteriormente enumeradas, queda prohibida toda conducta que atente contra la moral, las buenas costumbres, la seguridad de las personas o el patrimonio de la organización. Los trabajadores deberán abstenerse de realizar cualquier acción u omisión que pueda causar daño."),
			art("Queda prohibido realizar actividades comerciales o de otra naturaleza por cuenta propia o de terceros dentro de la jornada laboral o utilizando recursos de la organización, salvo autorización expresa y por escrito de la administración."),
			art("Se prohíbe fumar o utilizar cigarrillos electrónicos dentro de las dependencias, salvo en las áreas expresamente habilitadas para ello, si las hubiere, conforme a la normativa sobre ambientes libres de humo de tabaco."),
		)
	}

	content = append(content, art("La enumeración de prohibiciones contenida en este capítulo no es taxativa. La administración se reserva la facultad de complementar estas disposiciones mediante instrucciones internas, circulares o comunicaciones formales que se pongan en conocimiento de los trabajadores oportunamente."))

	return model.Section{Title: "NORMAS GENERALES DE CONDUCTA Y PROHIBICIONES", Content: content}
}

// LeyKarin builds the harassment and workplace violence prevention
// chapter
func LeyKarin(d model.ReglamentoData) model.Section {
	denunciaAnte := "la Inspección del Trabajo competente"
	conclusionesA := "la Inspección del Trabajo"
	if d.FlexibleLegalWording {
		denunciaAnte = "la autoridad administrativa competente"
		conclusionesA = "la autoridad competente"
	}

	return model.Section{
		Title: "PREVENCIÓN DEL ACOSO LABORAL, SEXUAL Y VIOLENCIA EN EL TRABAJO",
		Content: []model.ContentItem{
			plain("En cumplimiento de la legislación vigente sobre prevención, investigación y sanción del acoso laboral, acoso sexual y la violencia en el trabajo, la organización establece las siguientes disposiciones."),
			art("La organización se compromete a mantener un ambiente laboral libre de acoso laboral, acoso sexual y violencia en el trabajo, adoptando las medidas de prevención, protección y reparación que la ley exige. Estas obligaciones alcanzan a las relaciones entre trabajadores, y entre estos y el empleador, sus representantes, clientes, proveedores y cualquier persona que frecuente el lugar de trabajo."),
			art("Se entiende por acoso laboral toda conducta constitutiva de agresión u hostigamiento ejercida por el empleador o por uno o más trabajadores, en contra de otro u otros trabajadores, por cualquier medio, que tenga como resultado el menoscabo, maltrato o humillación, o que amenace o perjudique la situación laboral o las oportunidades de empleo de la persona afectada, sea que se manifieste una sola vez o de manera reiterada."),
			art("Se entiende por acoso sexual el que una persona realice, en forma indebida, por cualquier medio, requerimientos de carácter sexual, no consentidos por quien los recibe y que amenacen o perjudiquen su situación laboral o sus oportunidades de empleo."),
			art("Se entiende por violencia en el trabajo aquellas conductas ejercidas por terceros ajenos a la relación laboral, tales como clientes, proveedores o usuarios, que afecten a los trabajadores durante la prestación de sus servicios, con ocasión de ella o como consecuencia de esta."),
			art("La organización elaborará, implementará y difundirá un protocolo de prevención del acoso laboral, acoso sexual y la violencia en el trabajo, el cual contendrá: la identificación de los peligros y la evaluación de los riesgos psicosociales asociados, las medidas de prevención a adoptar, las medidas de control e información, y las medidas de resguardo de la privacidad y la honra de los involucrados."),
			art(fmt.Sprintf("Toda persona afectada por conductas de acoso o violencia podrá presentar su denuncia por escrito ante la administración o ante %s. Recibida la denuncia, el empleador adoptará de inmediato las medidas de resguardo necesarias respecto de los involucrados, tales como la separación de los espacios físicos o la redistribución del tiempo de jornada, considerando la gravedad de los hechos y las posibilidades derivadas de las condiciones de trabajo.", denunciaAnte)),
			art(fmt.Sprintf("La investigación interna se llevará a cabo conforme al procedimiento establecido en el protocolo de prevención, respetando los principios de confidencialidad, bilateralidad, celeridad y debido proceso. La investigación deberá concluirse en los plazos legales y sus conclusiones serán remitidas a %s para su revisión. Se prohíbe toda forma de represalia contra los denunciantes o testigos.", conclusionesA)),
			art("Los trabajadores tienen la obligación de participar en las actividades de capacitación y sensibilización sobre prevención del acoso y la violencia que la organización disponga. La administración realizará al menos una capacitación anual en esta materia, sin perjuicio de las actividades adicionales que se estimen necesarias."),
		},
	}
}

// Higiene builds the hygiene and safety chapter, adapted to the risk
// category
func Higiene(d model.ReglamentoData) model.Section {
	ctx := AdaptarSegunRubro(d.CategoriaRiesgo)

	content := []model.ContentItem{
		plain("En cumplimiento del deber general de protección que la legislación sobre accidentes del trabajo y enfermedades profesionales impone al empleador, se establecen las siguientes disposiciones en materia de higiene y seguridad."),
		art(fmt.Sprintf("La organización adoptará todas las medidas necesarias para proteger eficazmente la vida y la salud de los trabajadores, manteniendo las condiciones adecuadas de higiene y seguridad en %s, en conformidad con la legislación sobre seguro social contra riesgos de accidentes del trabajo y enfermedades profesionales, y con las normas reglamentarias sobre prevención de riesgos.", ctx.AmbienteLaboral)),
		art(fmt.Sprintf("Se identifican como riesgos principales asociados a la actividad: %s. La organización elaborará y mantendrá actualizado el reglamento de seguridad contemplado por la normativa reglamentaria, implementando las medidas de control y mitigación que resulten pertinentes para cada uno de los riesgos identificados.", ctx.RiesgosEjemplo)),
		art(fmt.Sprintf("Entre las medidas preventivas que se adoptarán se incluyen: %s. Los trabajadores deberán colaborar activamente en la mantención de estas condiciones y cumplir con las disposiciones del Departamento de Prevención de Riesgos o del encargado de seguridad, según corresponda.", ctx.MedidasPreventivas)),
		art("Cada trabajador está obligado a cumplir con las normas e instrucciones de higiene y seguridad, utilizar los elementos de protección que se le proporcionen, participar en las actividades de capacitación en prevención de riesgos, y cooperar en la mantención de condiciones seguras de trabajo. El trabajador que detecte condiciones de riesgo tiene el derecho y la obligación de informarlo de inmediato."),
		art("Queda prohibido realizar acciones que comprometan la seguridad propia o de terceros, desactivar o alterar dispositivos de seguridad, retirar protecciones de maquinarias, bloquear salidas de emergencia, o negarse a utilizar los elementos de protección personal cuando sean requeridos."),
		art("La organización mantendrá en sus dependencias los elementos necesarios para prestar primeros auxilios, señalización de seguridad adecuada, vías de evacuación despejadas, equipos contra incendios operativos, y un plan de emergencia actualizado que será dado a conocer a todos los trabajadores."),
	}

	if safe(d.Mutualidad) != "" {
		content = append(content, art(fmt.Sprintf("La organización se encuentra adherida a %s como organismo administrador del seguro social contra riesgos de accidentes del trabajo y enfermedades profesionales. Todo accidente laboral, por leve que sea, debe ser informado de inmediato al jefe directo para gestionar la denuncia correspondiente dentro de los plazos legales.", d.Mutualidad)))
	}

	content = append(content,
		art("Todo trabajador que sufra un accidente del trabajo o presente síntomas de enfermedad profesional deberá dar aviso inmediato a su jefe directo. Se realizará la denuncia ante el organismo administrador correspondiente, se facilitará la atención médica oportuna y se adoptarán las medidas preventivas necesarias para evitar la repetición del siniestro."),
		art("Se realizarán periódicamente evaluaciones de los riesgos presentes en los distintos puestos de trabajo, implementando las medidas correctivas que resulten de dichas evaluaciones. Los trabajadores deberán colaborar activamente en la identificación de riesgos y en la implementación de las medidas de control."),
	)

	return model.Section{Title: "HIGIENE Y SEGURIDAD EN EL TRABAJO", Content: content}
}
