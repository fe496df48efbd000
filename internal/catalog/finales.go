package catalog

import (
	"fmt"

	"normativa/internal/model"
)

// ProcedimientoDisciplinario builds the disciplinary procedure chapter
// according to the selected procedure type
func ProcedimientoDisciplinario(d model.ReglamentoData) model.Section {
	inspeccion := "la Inspección del Trabajo respectiva"
	reclamoAnte := "la Inspección del Trabajo"
	constanciaAnte := "la Inspección del Trabajo competente"
	if d.FlexibleLegalWording {
		inspeccion = "la autoridad administrativa competente"
		reclamoAnte = "la autoridad administrativa competente"
		constanciaAnte = "la autoridad administrativa competente"
	}

	content := []model.ContentItem{
		plain("El régimen disciplinario que se establece a continuación tiene por objeto regular las consecuencias del incumplimiento de las normas contenidas en este Reglamento."),
		art("Las infracciones a las obligaciones y prohibiciones contenidas en este Reglamento, en el contrato de trabajo o en las instrucciones legítimas del empleador, serán sancionadas conforme al procedimiento disciplinario establecido en el presente capítulo, sin perjuicio de las acciones civiles, penales o administrativas que pudieren corresponder."),
		art("La aplicación de toda sanción disciplinaria se realizará con estricto respeto al debido proceso, otorgando al trabajador la posibilidad de ser escuchado y presentar sus descargos antes de la adopción de la medida. Las sanciones serán proporcionales a la gravedad de la falta cometida."),
	}

	switch d.TipoProcedimiento {
	case "escalonado":
		content = append(content,
			plain("Se aplicará un sistema disciplinario de carácter progresivo y escalonado, que contempla las siguientes etapas sucesivas:"),
			art("Primera etapa — Amonestación verbal: ante la primera manifestación de una falta leve, el superior jerárquico realizará una amonestación verbal al trabajador, instándolo a corregir su conducta. Se dejará constancia interna del hecho en el registro del trabajador."),
			art(fmt.Sprintf("Segunda etapa — Amonestación por escrito: en caso de reincidencia o ante una falta de mayor entidad, se aplicará una amonestación formal por escrito, que se incorporará a la carpeta personal del trabajador. Se entregará copia al trabajador y, cuando la ley lo exija, se remitirá a %s.", inspeccion)),
			art("Tercera etapa — Multa: ante la reiteración de faltas previamente amonestadas, el empleador podrá aplicar una multa de hasta el veinticinco por ciento de la remuneración diaria del infractor. El producto de las multas se destinará a los fines que la ley establece. Lo anterior se aplicará dentro de los límites establecidos por la legislación laboral vigente."),
			art("Cuarta etapa — Desvinculación: cuando la gravedad o reiteración de las faltas lo justifique, se procederá a la terminación del contrato de trabajo conforme a las causales legales aplicables, respetando el debido proceso y los derechos del trabajador, incluidas las indemnizaciones que procedan."),
		)

	case "segun_gravedad":
		content = append(content,
			art("Se aplicarán las medidas disciplinarias atendiendo a la naturaleza, gravedad, circunstancias y consecuencias de cada infracción, evaluando caso a caso la proporcionalidad de la sanción. No será necesario agotar etapas previas cuando la gravedad de la falta así lo amerite."),
			art("Faltas leves: aquellas infracciones menores que no causan perjuicio significativo, tales como atrasos aislados, descuidos menores o incumplimientos de baja intensidad. Podrán ser sancionadas con amonestación verbal o escrita."),
			art("Faltas moderadas: aquellas que implican un incumplimiento relevante de las obligaciones laborales o de las normas de este Reglamento, o que causan un perjuicio apreciable a la organización o a la convivencia laboral. Podrán ser sancionadas con amonestación escrita o multa de hasta el veinticinco por ciento de la remuneración diaria, dentro de los límites establecidos por la legislación laboral vigente."),
			art("Faltas graves: aquellas que comprometen seriamente la seguridad de las personas, el patrimonio o la reputación de la organización, o que configuran alguna de las causales legales de terminación. Podrán dar lugar a la terminación inmediata del contrato de trabajo conforme a la ley."),
		)

	case "personalizado":
		if safe(d.ProcedimientoDisciplinario) != "" {
			content = append(content,
				plain("Se ha establecido el siguiente procedimiento disciplinario particular para la gestión de las infracciones al presente Reglamento:"),
				art(d.ProcedimientoDisciplinario),
			)
		} else {
			content = append(content, art(fmt.Sprintf("El procedimiento disciplinario será determinado conforme a las circunstancias de cada caso, respetando siempre los principios de proporcionalidad, debido proceso y los derechos fundamentales del trabajador. En todo caso, cualquier sanción podrá ser reclamada ante %s de conformidad a la ley.", reclamoAnte)))
		}

	default:
		content = append(content, art("Las sanciones aplicables incluyen, según la gravedad de la infracción: amonestación verbal, amonestación por escrito, multa de hasta el veinticinco por ciento de la remuneración diaria, y terminación del contrato de trabajo en los casos legalmente procedentes. Lo anterior se aplicará dentro de los límites establecidos por la legislación laboral vigente."))
	}

	content = append(content,
		art(fmt.Sprintf("De toda sanción aplicada se dejará constancia por escrito, notificándose al trabajador afectado, quien deberá firmar la respectiva constancia. En caso de negativa a firmar, se dejará testimonio de ello ante un testigo. El trabajador tendrá derecho a reclamar ante %s si considerare que la medida es injusta o desproporcionada.", constanciaAnte)),
		art("Se llevará un registro interno de las sanciones aplicadas, el cual será de carácter reservado y se utilizará exclusivamente para efectos de evaluar la reincidencia y la proporcionalidad de las medidas disciplinarias futuras."),
	)

	return model.Section{Title: "PROCEDIMIENTO DISCIPLINARIO", Content: content}
}

// DisposicionesGenerales builds the general provisions chapter
func DisposicionesGenerales(d model.ReglamentoData) model.Section {
	content := []model.ContentItem{
		plain("Las disposiciones que se establecen a continuación regulan aspectos generales de la relación laboral no abordados específicamente en los capítulos precedentes."),
		art("Las remuneraciones se pagarán en moneda de curso legal, en la forma, período y lugar convenidos en el contrato individual de trabajo, con las deducciones legales y convencionales que correspondan. El trabajador recibirá junto con su remuneración la liquidación de sueldo respectiva, en la que se detallarán los haberes, descuentos y monto líquido a pagar."),
		art("Los trabajadores tendrán derecho al feriado anual y a los permisos que establece la legislación laboral vigente. Las vacaciones se otorgarán preferentemente en forma continua, pudiendo fraccionarse de común acuerdo entre las partes. La administración establecerá un calendario de vacaciones que concilie las necesidades operativas con las preferencias de los trabajadores."),
		art("Las licencias médicas deberán ser presentadas por el trabajador dentro del plazo legal correspondiente. La organización las tramitará ante el organismo previsional respectivo, sin que ello signifique pronunciamiento sobre su procedencia. El trabajador deberá abstenerse de realizar actividades incompatibles con su estado de salud durante el período de licencia."),
		art("Toda terminación del contrato de trabajo se ajustará a las disposiciones legales vigentes, debiendo comunicarse el despido por escrito, indicando la causal invocada y los hechos en que se funda. Se entregarán al trabajador los certificados, finiquito y demás documentos que la ley exige, dentro de los plazos establecidos."),
	}

	// Email-contact clause only when a contact address exists
	if safe(d.Email) != "" {
		content = append(content, art(fmt.Sprintf("Para efectos de comunicaciones oficiales, la organización podrá utilizar medios electrónicos, incluyendo el correo electrónico corporativo y las plataformas digitales que se establezcan. Las comunicaciones enviadas al correo institucional del trabajador se entenderán válidamente notificadas. Para consultas sobre este Reglamento, los trabajadores podrán dirigirse a %s.", d.Email)))
	} else {
		content = append(content, art("Para efectos de comunicaciones oficiales, la organización podrá utilizar medios electrónicos, incluyendo el correo electrónico corporativo y las plataformas digitales que se establezcan. Las comunicaciones enviadas al correo institucional del trabajador se entenderán válidamente notificadas."))
	}

	content = append(content, art("Los trabajadores deberán comunicar oportunamente cualquier cambio en sus datos personales, domicilio, estado civil, cargas familiares o situación previsional, a fin de mantener actualizada la información necesaria para la correcta administración de la relación laboral y el cumplimiento de las obligaciones legales."))

	return model.Section{Title: "DISPOSICIONES GENERALES", Content: content}
}

// Vigencia builds the validity and communication chapter
func Vigencia(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "VIGENCIA Y COMUNICACIÓN",
		Content: []model.ContentItem{
			art("El presente Reglamento Interno de Orden, Higiene y Seguridad entrará en vigencia una vez transcurrido el plazo legal contado desde la fecha en que se haya puesto en conocimiento de los trabajadores, mediante la entrega del ejemplar correspondiente a cada uno de ellos, conforme al procedimiento establecido por la legislación vigente."),
			art("Las normas del presente Reglamento se entenderán incorporadas a los contratos individuales de trabajo vigentes y a los que se celebren con posterioridad, mientras se mantenga en vigor. Los trabajadores no podrán alegar desconocimiento de sus disposiciones una vez cumplido el procedimiento de difusión."),
			art("Corresponderá a la administración remitir copia del presente Reglamento a las autoridades competentes, de conformidad con la normativa vigente y dentro de los plazos legales aplicables."),
			art("Se deja constancia que este Reglamento ha sido elaborado dando cumplimiento a las exigencias de la legislación laboral en materia de orden, higiene y seguridad, de la normativa sobre prevención de riesgos profesionales, de la legislación sobre prevención del acoso laboral, sexual y la violencia en el trabajo, y de la demás normativa concordante."),
		},
	}
}

// Actualizacion builds the amendment chapter
func Actualizacion(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "ACTUALIZACIÓN Y MODIFICACIONES",
		Content: []model.ContentItem{
			plain("Las disposiciones de este capítulo regulan la facultad del empleador para modificar el presente Reglamento y el procedimiento para dar validez a dichas modificaciones."),
			art("La organización tendrá la facultad de modificar, complementar o actualizar el presente Reglamento cuando sea necesario para adecuarlo a cambios en la legislación laboral, en la estructura organizacional, en las condiciones de operación o en cualquier otro aspecto que incida en su contenido, de conformidad con la legislación vigente. Toda modificación seguirá el procedimiento legal correspondiente."),
			art("Las modificaciones serán comunicadas formalmente a los trabajadores mediante la entrega personal de un ejemplar actualizado o del anexo que contenga las enmiendas, dejándose constancia escrita de su recepción. Las modificaciones entrarán en vigencia una vez transcurrido el plazo legal contado desde su notificación a los trabajadores."),
			art("Corresponderá a la administración remitir copia de las modificaciones a las autoridades competentes, de conformidad con la normativa vigente y dentro de los plazos legales aplicables."),
			art("Corresponderá a la administración revisar periódicamente el contenido de este Reglamento, al menos una vez cada dos años, o antes cuando se produzcan reformas legales relevantes, con el objeto de asegurar su permanente adecuación a la legislación vigente y a las mejores prácticas en materia de relaciones laborales, higiene y seguridad."),
			art("Se deja expresa constancia de que las disposiciones del presente Reglamento se interpretarán siempre de conformidad con la legislación vigente al momento de su aplicación. En caso de que alguna disposición resultare contraria a una norma legal posterior, prevalecerá esta última sin que ello afecte la validez de las restantes disposiciones del Reglamento."),
		},
	}
}

// AdecuacionNormativa builds the single-article regulatory adequacy
// chapter
func AdecuacionNormativa(model.ReglamentoData) model.Section {
	return model.Section{
		Title: "ADECUACIÓN NORMATIVA",
		Content: []model.ContentItem{
			art("ARTÍCULO N° — Adecuación normativa: El presente Reglamento se dicta conforme a la legislación laboral vigente a la fecha de su emisión. En caso de modificaciones legales posteriores que afecten su contenido, la empresa procederá a su actualización de conformidad con la normativa aplicable."),
		},
	}
}
