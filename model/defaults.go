package model

// SceneTemplate is one entry of the default wedding scene taxonomy.
type SceneTemplate struct {
	Name              string
	Division          string
	Description       string
	PlannedDuration   int
	IsAnchorMoment    string
	AnchorDescription string
	Priority          string
}

// VersionTemplate describes one of the three default cuts created per project.
type VersionTemplate struct {
	Name              string
	Type              string
	TargetDurationMin int
	TargetDurationMax int
}

// AnchorFirstLookNovio marks the groom's first-look scene; the opening
// suggestion keys off this anchor description rather than the editable
// free-text description.
const AnchorFirstLookNovio = "First Look (novio)"

// DefaultVersions is the fixed triple created alongside every project.
var DefaultVersions = []VersionTemplate{
	{Name: "Teaser", Type: VersionTypeShort, TargetDurationMin: 55, TargetDurationMax: 65},
	{Name: "Highlights", Type: VersionTypeMedium, TargetDurationMin: 180, TargetDurationMax: 300},
	{Name: "Full", Type: VersionTypeLong, TargetDurationMin: 1800, TargetDurationMax: 3600},
}

// DefaultWeddingScenes is the scene taxonomy seeded into every new project,
// in template order (scene_order = index).
var DefaultWeddingScenes = []SceneTemplate{
	// Preparativos Novia
	{Name: "Preparativos Novia", Division: DivisionIntroduccion, Description: "Mastershoot", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Preparativos Novia", Division: DivisionNucleo, Description: "Retoque maquillaje y peinado", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Preparativos Novia", Division: DivisionNucleo, Description: "Colocación de vestido y accesorios", PlannedDuration: 90, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Preparativos Novia", Division: DivisionNucleo, Description: "Sesión de batas con damas", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Preparativos Novia", Division: DivisionResolucion, Description: "Fotos sola y con familia", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},

	// Preparativos Novio
	{Name: "Preparativos Novio", Division: DivisionIntroduccion, Description: "Mastershoot", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Preparativos Novio", Division: DivisionNucleo, Description: "Colocación de traje y accesorios", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Preparativos Novio", Division: DivisionNucleo, Description: "Brindis", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Preparativos Novio", Division: DivisionResolucion, Description: "Fotos solo, con amigos y familia", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// First Look
	{Name: "First Look", Division: DivisionIntroduccion, Description: "Espera del novio", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "First Look", Division: DivisionNucleo, Description: "First look papá", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "First Look", Division: DivisionNucleo, Description: "First look novio", PlannedDuration: 90, IsAnchorMoment: AnchorYes, AnchorDescription: AnchorFirstLookNovio, Priority: PriorityMustHave},
	{Name: "First Look", Division: DivisionResolucion, Description: "Primeras palabras y abrazo", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},

	// Sesión Novios
	{Name: "Sesión Novios", Division: DivisionNucleo, Description: "Interacción guiada", PlannedDuration: 120, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Sesión Novios", Division: DivisionNucleo, Description: "Interacción espontánea", PlannedDuration: 90, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Sesión Familia
	{Name: "Sesión Familia", Division: DivisionNucleo, Description: "Familia novia", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Sesión Familia", Division: DivisionNucleo, Description: "Familia novio", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Sesión Familia", Division: DivisionNucleo, Description: "Familias juntas", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Sesión Damas
	{Name: "Sesión Damas", Division: DivisionNucleo, Description: "Interacción guiada", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Sesión Damas", Division: DivisionNucleo, Description: "Interacción espontánea", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Sesión Caballeros
	{Name: "Sesión Caballeros", Division: DivisionNucleo, Description: "Interacción guiada", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Sesión Caballeros", Division: DivisionNucleo, Description: "Interacción espontánea", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Ceremonia Civil
	{Name: "Ceremonia Civil", Division: DivisionIntroduccion, Description: "Entrada e inicio de ceremonia", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Ceremonia Civil", Division: DivisionNucleo, Description: "Lectura y votos legales", PlannedDuration: 60, IsAnchorMoment: AnchorYes, AnchorDescription: "\"Sí, acepto\" (civil)", Priority: PriorityMustHave},
	{Name: "Ceremonia Civil", Division: DivisionNucleo, Description: "Primer beso como casados", PlannedDuration: 15, IsAnchorMoment: AnchorYes, AnchorDescription: "Primer beso", Priority: PriorityMustHave},
	{Name: "Ceremonia Civil", Division: DivisionResolucion, Description: "Salida y felicitaciones", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},

	// Ceremonia Religiosa
	{Name: "Ceremonia Religiosa", Division: DivisionIntroduccion, Description: "Cortejo", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Ceremonia Religiosa", Division: DivisionIntroduccion, Description: "Entrada de la novia", PlannedDuration: 90, IsAnchorMoment: AnchorYes, AnchorDescription: "Entrada de la novia", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Lecturas", PlannedDuration: 90, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Sermón del padre", PlannedDuration: 120, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Promesas matrimoniales", PlannedDuration: 60, IsAnchorMoment: AnchorYes, AnchorDescription: "Yo, te acepto a ti, como mi esposo...", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Intercambio de anillos", PlannedDuration: 45, IsAnchorMoment: AnchorYes, AnchorDescription: "Entrega de anillos (ceremonia religiosa)", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Rito: arras, velación, lazo, ramo a la virgen", PlannedDuration: 90, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Saludo de paz", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionNucleo, Description: "Primer beso como casados", PlannedDuration: 20, IsAnchorMoment: AnchorYes, AnchorDescription: "Primer beso", Priority: PriorityMustHave},
	{Name: "Ceremonia Religiosa", Division: DivisionResolucion, Description: "Salida entre aplausos", PlannedDuration: 60, IsAnchorMoment: AnchorYes, AnchorDescription: "Salida de ceremonia", Priority: PriorityMustHave},

	// Cóctel
	{Name: "Cóctel", Division: DivisionIntroduccion, Description: "Llegada de invitados", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Cóctel", Division: DivisionNucleo, Description: "Felicitaciones a los recién casados", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Cóctel", Division: DivisionNucleo, Description: "Convivencia, canapés y bebidas", PlannedDuration: 240, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Cóctel", Division: DivisionResolucion, Description: "Invitación a pasar al salón", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Entrada Novios
	{Name: "Entrada Novios", Division: DivisionIntroduccion, Description: "Expectativa y música", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Entrada Novios", Division: DivisionNucleo, Description: "Gran entrada de los novios", PlannedDuration: 60, IsAnchorMoment: AnchorYes, AnchorDescription: "Entrada de novios", Priority: PriorityMustHave},
	{Name: "Entrada Novios", Division: DivisionResolucion, Description: "Llegada a la mesa principal", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Banquete
	{Name: "Banquete", Division: DivisionIntroduccion, Description: "Mastershoot", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Banquete", Division: DivisionNucleo, Description: "Servicio y convivencia", PlannedDuration: 600, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Banquete", Division: DivisionResolucion, Description: "Gente de pie", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Brindis
	{Name: "Brindis", Division: DivisionNucleo, Description: "Discurso emocional", PlannedDuration: 120, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Brindis", Division: DivisionNucleo, Description: "Brindis", PlannedDuration: 45, IsAnchorMoment: AnchorYes, AnchorDescription: "Brindis clave", Priority: PriorityMustHave},

	// Bailes
	{Name: "Bailes", Division: DivisionIntroduccion, Description: "Preparando la pista de baile", PlannedDuration: 30, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Bailes", Division: DivisionNucleo, Description: "Baile novia y papá", PlannedDuration: 180, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Bailes", Division: DivisionNucleo, Description: "Baile novio y mamá", PlannedDuration: 180, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},
	{Name: "Bailes", Division: DivisionNucleo, Description: "Baile de esposos", PlannedDuration: 240, IsAnchorMoment: AnchorYes, AnchorDescription: "Primer baile", Priority: PriorityMustHave},
	{Name: "Bailes", Division: DivisionResolucion, Description: "Apertura de pista", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityMustHave},

	// Fiesta
	{Name: "Fiesta", Division: DivisionIntroduccion, Description: "Mastershoot", PlannedDuration: 45, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Fiesta", Division: DivisionNucleo, Description: "Baile, risas, tragos", PlannedDuration: 400, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Fiesta", Division: DivisionNucleo, Description: "Happenings", PlannedDuration: 200, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Ramo
	{Name: "Ramo", Division: DivisionIntroduccion, Description: "Solteras al frente", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Ramo", Division: DivisionNucleo, Description: "Lanzamiento del ramo", PlannedDuration: 45, IsAnchorMoment: AnchorYes, AnchorDescription: "Lanzamiento de ramo", Priority: PriorityNiceToHave},
	{Name: "Ramo", Division: DivisionResolucion, Description: "Celebración de quien lo atrapó", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},

	// Liga
	{Name: "Liga", Division: DivisionIntroduccion, Description: "Baile del novio", PlannedDuration: 60, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Liga", Division: DivisionNucleo, Description: "Solteros al frente", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
	{Name: "Liga", Division: DivisionNucleo, Description: "Lanzamiento de la liga", PlannedDuration: 45, IsAnchorMoment: AnchorYes, AnchorDescription: "Lanzamiento de liga", Priority: PriorityNiceToHave},
	{Name: "Liga", Division: DivisionResolucion, Description: "Celebración de quien la atrapó", PlannedDuration: 20, IsAnchorMoment: AnchorNo, AnchorDescription: "", Priority: PriorityNiceToHave},
}
