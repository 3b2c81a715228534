package domain

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "TK_NotStart"
	StatusInProgress TaskStatus = "TK_Active"
	StatusComplete   TaskStatus = "TK_Complete"
)

var statusNames = map[TaskStatus]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusComplete:   "Complete",
}

func (s TaskStatus) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return string(s)
}

type TaskType string

const (
	TaskStartMilestone    TaskType = "TT_Mile"
	TaskFinishMilestone   TaskType = "TT_FinMile"
	TaskLOE               TaskType = "TT_LOE"
	TaskDependent         TaskType = "TT_Task"
	TaskResourceDependent TaskType = "TT_Rsrc"
	TaskWBSSummary        TaskType = "TT_WBS"
)

var taskTypeNames = map[TaskType]string{
	TaskStartMilestone:    "Start Milestone",
	TaskFinishMilestone:   "Finish Milestone",
	TaskLOE:               "Level of Effort",
	TaskDependent:         "Task Dependent",
	TaskResourceDependent: "Resource Dependent",
	TaskWBSSummary:        "WBS Summary",
}

func (t TaskType) String() string {
	if n, ok := taskTypeNames[t]; ok {
		return n
	}
	return string(t)
}

type PercentType string

const (
	PercentPhysical PercentType = "CP_Phys"
	PercentDuration PercentType = "CP_Drtn"
	PercentUnits    PercentType = "CP_Units"
)

type LinkType string

const (
	LinkFS LinkType = "FS"
	LinkFF LinkType = "FF"
	LinkSS LinkType = "SS"
	LinkSF LinkType = "SF"
)

// ParseLinkType reads a pred_type code such as "PR_FS".
func ParseLinkType(predType string) LinkType {
	if len(predType) < 2 {
		return LinkType(predType)
	}
	return LinkType(predType[len(predType)-2:])
}

type ConstraintType string

const (
	ConstraintALAP       ConstraintType = "CS_ALAP"
	ConstraintMEO        ConstraintType = "CS_MEO"
	ConstraintMEOA       ConstraintType = "CS_MEOA"
	ConstraintMEOB       ConstraintType = "CS_MEOB"
	ConstraintMandFinish ConstraintType = "CS_MANDFIN"
	ConstraintMandStart  ConstraintType = "CS_MANDSTART"
	ConstraintMSO        ConstraintType = "CS_MSO"
	ConstraintMSOA       ConstraintType = "CS_MSOA"
	ConstraintMSOB       ConstraintType = "CS_MSOB"
)

var constraintNames = map[ConstraintType]string{
	ConstraintALAP:       "As Late As Possible",
	ConstraintMEO:        "Finish On",
	ConstraintMEOA:       "Finish On or After",
	ConstraintMEOB:       "Finish On or Before",
	ConstraintMandFinish: "Mandatory Finish",
	ConstraintMandStart:  "Mandatory Start",
	ConstraintMSO:        "Start On",
	ConstraintMSOA:       "Start On or After",
	ConstraintMSOB:       "Start On or Before",
}

func (c ConstraintType) String() string {
	if n, ok := constraintNames[c]; ok {
		return n
	}
	return string(c)
}

type ResourceType string

const (
	ResourceLabor    ResourceType = "RT_Labor"
	ResourceMaterial ResourceType = "RT_Mat"
	ResourceNonLabor ResourceType = "RT_Equip"
)

var resourceTypeNames = map[ResourceType]string{
	ResourceLabor:    "Labor",
	ResourceMaterial: "Material",
	ResourceNonLabor: "Non-Labor",
}

func (r ResourceType) String() string {
	if n, ok := resourceTypeNames[r]; ok {
		return n
	}
	return string(r)
}
