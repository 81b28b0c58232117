package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/trabalhista/calculadora/internal/calculation"
	"github.com/trabalhista/calculadora/internal/config"
	"github.com/trabalhista/calculadora/internal/domain"
	"github.com/trabalhista/calculadora/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultParamsFile = "parametros.yaml"

var rootCmd = &cobra.Command{
	Use:   "trabalhista",
	Short: "Calculadora de verbas trabalhistas (CLT)",
	Long:  "Salário líquido, férias, 13º salário e rescisão de contrato a partir das tabelas legais vigentes",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "trabalhista %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// loadParams resolves the fiscal table: the --params flag, then a
// parametros.yaml next to the binary, then the built-in table.
func loadParams(cmd *cobra.Command) *domain.LegalParameters {
	file, _ := cmd.Flags().GetString("params")
	if file == "" && fileExists(defaultParamsFile) {
		file = defaultParamsFile
	}
	if file == "" {
		return config.Default2025()
	}
	params, err := config.LoadParameters(file)
	if err != nil {
		log.Fatal(err)
	}
	return params
}

func render(cmd *cobra.Command, result *domain.CalculationResult) {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		log.Fatalf("unsupported format: %s", format)
	}
	data, err := f.Format(result)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func mustDecimal(cmd *cobra.Command, flag string) decimal.Decimal {
	raw, _ := cmd.Flags().GetString(flag)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("flag --%s: %q is not a valid amount", flag, raw)
	}
	return value
}

func mustDate(cmd *cobra.Command, flag string) time.Time {
	raw, _ := cmd.Flags().GetString(flag)
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Fatalf("flag --%s: %q is not a valid date (YYYY-MM-DD)", flag, raw)
	}
	return value
}

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salario",
		Short: "Calcula o salário líquido mensal",
		Run: func(cmd *cobra.Command, args []string) {
			params := loadParams(cmd)
			dependents, _ := cmd.Flags().GetInt("dependentes")
			under14, _ := cmd.Flags().GetInt("dependentes-menores")
			simplified, _ := cmd.Flags().GetBool("irrf-simplificado")

			result, err := calculation.NewSalaryCalculator(params).Calculate(domain.SalaryInput{
				GrossSalary:       mustDecimal(cmd, "salario"),
				Dependents:        dependents,
				DependentsUnder14: under14,
				SimplifiedIRRF:    simplified,
			})
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, result)
		},
	}
	cmd.Flags().String("salario", "", "salário bruto mensal")
	cmd.Flags().Int("dependentes", 0, "dependentes para fins de IRRF")
	cmd.Flags().Int("dependentes-menores", 0, "dependentes menores de 14 anos (salário-família)")
	cmd.Flags().Bool("irrf-simplificado", false, "usa o desconto simplificado do IRRF")
	_ = cmd.MarkFlagRequired("salario")
	return cmd
}

func vacationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ferias",
		Short: "Calcula férias com terço constitucional e abono pecuniário",
		Run: func(cmd *cobra.Command, args []string) {
			params := loadParams(cmd)
			dependents, _ := cmd.Flags().GetInt("dependentes")
			absences, _ := cmd.Flags().GetInt("faltas")
			days, _ := cmd.Flags().GetInt("dias")
			sold, _ := cmd.Flags().GetInt("abono")

			result, err := calculation.NewVacationCalculator(params).Calculate(domain.VacationInput{
				GrossSalary:         mustDecimal(cmd, "salario"),
				Dependents:          dependents,
				UnjustifiedAbsences: absences,
				RequestedDays:       days,
				SoldDays:            sold,
			})
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, result)
		},
	}
	cmd.Flags().String("salario", "", "salário bruto mensal")
	cmd.Flags().Int("dependentes", 0, "dependentes para fins de IRRF")
	cmd.Flags().Int("faltas", 0, "faltas injustificadas no período aquisitivo")
	cmd.Flags().Int("dias", 30, "dias de férias solicitados")
	cmd.Flags().Int("abono", 0, "dias vendidos (abono pecuniário)")
	_ = cmd.MarkFlagRequired("salario")
	return cmd
}

func thirteenthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decimo-terceiro",
		Short: "Calcula o 13º salário integral ou parcelado",
		Run: func(cmd *cobra.Command, args []string) {
			params := loadParams(cmd)
			dependents, _ := cmd.Flags().GetInt("dependentes")
			months, _ := cmd.Flags().GetInt("meses")
			split, _ := cmd.Flags().GetBool("parcelado")

			input := domain.ThirteenthInput{
				GrossSalary:  mustDecimal(cmd, "salario"),
				Dependents:   dependents,
				MonthsWorked: months,
				Split:        split,
			}
			if raw, _ := cmd.Flags().GetString("primeira-parcela"); raw != "" {
				input.FirstInstallmentPaid = mustDecimal(cmd, "primeira-parcela")
			}

			result, err := calculation.NewThirteenthCalculator(params).Calculate(input)
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, result)
		},
	}
	cmd.Flags().String("salario", "", "salário bruto mensal")
	cmd.Flags().Int("dependentes", 0, "dependentes para fins de IRRF")
	cmd.Flags().Int("meses", 12, "meses trabalhados no ano (1 a 12)")
	cmd.Flags().Bool("parcelado", false, "calcula as duas parcelas")
	cmd.Flags().String("primeira-parcela", "", "valor já pago de primeira parcela")
	_ = cmd.MarkFlagRequired("salario")
	return cmd
}

var reasonAliases = map[string]domain.TerminationReason{
	"sem-justa-causa":  domain.ReasonWithoutCause,
	"pedido-demissao":  domain.ReasonResignation,
	"acordo-mutuo":     domain.ReasonMutualAgreement,
	"justa-causa":      domain.ReasonForCause,
	"fim-de-contrato":  domain.ReasonContractExpiry,
	"without_cause":    domain.ReasonWithoutCause,
	"resignation":      domain.ReasonResignation,
	"mutual_agreement": domain.ReasonMutualAgreement,
	"for_cause":        domain.ReasonForCause,
	"contract_expiry":  domain.ReasonContractExpiry,
}

func terminationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescisao",
		Short: "Calcula a rescisão do contrato de trabalho",
		Run: func(cmd *cobra.Command, args []string) {
			params := loadParams(cmd)
			dependents, _ := cmd.Flags().GetInt("dependentes")
			rawReason, _ := cmd.Flags().GetString("motivo")
			noticeWorked, _ := cmd.Flags().GetBool("aviso-cumprido")
			unusedDays, _ := cmd.Flags().GetInt("ferias-vencidas")

			reason, ok := reasonAliases[rawReason]
			if !ok {
				// Let the calculator report it alongside any other violation.
				reason = domain.TerminationReason(rawReason)
			}

			input := domain.TerminationInput{
				GrossSalary:        mustDecimal(cmd, "salario"),
				Dependents:         dependents,
				AdmissionDate:      mustDate(cmd, "admissao"),
				TerminationDate:    mustDate(cmd, "demissao"),
				Reason:             reason,
				NoticeWorked:       noticeWorked,
				UnusedVacationDays: unusedDays,
			}
			if raw, _ := cmd.Flags().GetString("saldo-fgts"); raw != "" {
				input.FGTSBalance = mustDecimal(cmd, "saldo-fgts")
			}

			result, err := calculation.NewTerminationCalculator(params).Calculate(input)
			if err != nil {
				log.Fatal(err)
			}
			render(cmd, result)
		},
	}
	cmd.Flags().String("salario", "", "salário bruto mensal")
	cmd.Flags().Int("dependentes", 0, "dependentes para fins de IRRF")
	cmd.Flags().String("admissao", "", "data de admissão (YYYY-MM-DD)")
	cmd.Flags().String("demissao", "", "data de desligamento (YYYY-MM-DD)")
	cmd.Flags().String("motivo", "", "sem-justa-causa | pedido-demissao | acordo-mutuo | justa-causa | fim-de-contrato")
	cmd.Flags().String("saldo-fgts", "", "saldo acumulado do FGTS")
	cmd.Flags().Bool("aviso-cumprido", false, "aviso prévio trabalhado (pedido de demissão)")
	cmd.Flags().Int("ferias-vencidas", 0, "dias de férias vencidas e não gozadas")
	_ = cmd.MarkFlagRequired("salario")
	_ = cmd.MarkFlagRequired("admissao")
	_ = cmd.MarkFlagRequired("demissao")
	_ = cmd.MarkFlagRequired("motivo")
	return cmd
}

func main() {
	rootCmd.PersistentFlags().String("format", "console", "output format (console, json, csv)")
	rootCmd.PersistentFlags().String("params", "", "YAML file with the fiscal parameter table")

	rootCmd.AddCommand(salaryCmd())
	rootCmd.AddCommand(vacationCmd())
	rootCmd.AddCommand(thirteenthCmd())
	rootCmd.AddCommand(terminationCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
