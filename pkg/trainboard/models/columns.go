package models

// Worksheet titles read by the dashboard.
const (
	SheetWeeklyPlan = "周训练计划"
	SheetLibrary    = "动作库"
	SheetBody       = "身体状况与禁忌"
	SheetNotes      = "备注与说明"
)

// Weekly plan columns.
const (
	ColDay         = "训练日"
	ColExercise    = "动作名称"
	ColType        = "类型"
	ColSetsReps    = "组数×次数"
	ColTempo       = "节奏/要点"
	ColTargetRPE   = "目标RPE"
	ColProgression = "进阶规则"
	ColCaution     = "注意事项"
	ColPhase       = "阶段"
)

// Exercise library columns.
const (
	ColLibraryName   = "动作名称"
	ColLibraryType   = "动作类型"
	ColLibraryMuscle = "目标肌群"
	ColLibraryNotes  = "个性化备注"
)

// SheetNames lists the worksheets in tab order.
func SheetNames() []string {
	return []string{SheetWeeklyPlan, SheetLibrary, SheetBody, SheetNotes}
}
