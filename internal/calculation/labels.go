package calculation

// Line-item labels. The presentation layer localizes nothing; these are the
// statutory names the settlement lines carry.
const (
	LabelGrossSalary     = "Salário bruto"
	LabelFamilyAllowance = "Salário-família"

	LabelVacation           = "Férias"
	LabelVacationThird      = "1/3 constitucional sobre férias"
	LabelVacationBonus      = "Abono pecuniário"
	LabelVacationBonusThird = "1/3 sobre abono pecuniário"

	LabelThirteenth = "13º salário"

	LabelBalanceOfSalary           = "Saldo de salário"
	LabelIndemnifiedNotice         = "Aviso prévio indenizado"
	LabelProportionalThirteenth    = "13º salário proporcional"
	LabelProportionalVacation      = "Férias proporcionais"
	LabelProportionalVacationThird = "1/3 sobre férias proporcionais"
	LabelUnusedVacation            = "Férias vencidas"
	LabelUnusedVacationThird       = "1/3 sobre férias vencidas"
	LabelFGTSPenalty               = "Multa rescisória do FGTS"
	LabelNoticeDeduction           = "Aviso prévio não cumprido"

	LabelINSS = "INSS"
	LabelIRRF = "IRRF"

	detailExempt = "isento de INSS/IRRF"
)
