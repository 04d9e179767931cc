// dbtool administra los datos de negocio de la base: reporte de estado y
// limpieza masiva en orden de dependencia referencial. Users y companies
// nunca se tocan.
//
// Uso:
//
//	dbtool status [--company <id>]
//	dbtool clear --company <id> [--yes]
//	dbtool clear --all [--yes]
//
// Sin --yes, clear pide confirmación por stdin: solo "yes" procede.
// Sale con 0 si terminó o fue cancelado por el operador, 1 ante fallas.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/belofte2025/belofte-sub001/internal/application/maintenance"
	"github.com/belofte2025/belofte-sub001/internal/infrastructure/postgres"
	"github.com/belofte2025/belofte-sub001/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	companyID := fs.String("company", "", "limitar la operación a una empresa")
	all := fs.Bool("all", false, "operar sobre todas las empresas")
	yes := fs.Bool("yes", false, "omitir la confirmación interactiva")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := maintenance.NewCleanupUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewCompanyRepository(pool),
		postgres.NewStatsRepository(pool),
	)

	switch cmd {
	case "status":
		runStatus(uc, *companyID)
	case "clear":
		if *companyID == "" && !*all {
			fmt.Fprintln(os.Stderr, "clear requiere --company <id> o --all")
			os.Exit(1)
		}
		if *companyID != "" && *all {
			fmt.Fprintln(os.Stderr, "--company y --all son excluyentes")
			os.Exit(1)
		}
		runClear(ctx, uc, *companyID, *yes)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `uso:
  dbtool status [--company <id>]
  dbtool clear --company <id> [--yes]
  dbtool clear --all [--yes]`)
}

func runStatus(uc *maintenance.CleanupUseCase, companyID string) {
	counts, err := uc.Status(companyID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer estado: %v\n", err)
		os.Exit(1)
	}
	scope := "all companies"
	if companyID != "" {
		scope = "company " + companyID
	}
	fmt.Printf("Database status (%s)\n\n", scope)
	fmt.Printf("  %-16s %d\n", "companies", counts.Companies)
	fmt.Printf("  %-16s %d\n", "users", counts.Users)
	fmt.Printf("  %-16s %d\n", "customers", counts.Customers)
	fmt.Printf("  %-16s %d\n", "sales", counts.Sales)
	fmt.Printf("  %-16s %d\n", "sale items", counts.SaleItems)
	fmt.Printf("  %-16s %d\n", "payments", counts.Payments)
	fmt.Printf("  %-16s %d\n", "suppliers", counts.Suppliers)
	fmt.Printf("  %-16s %d\n", "supplier items", counts.SupplierItems)
	fmt.Printf("  %-16s %d\n", "containers", counts.Containers)
	fmt.Printf("  %-16s %d\n", "container items", counts.ContainerItems)
	fmt.Printf("  %-16s %d\n", "audit logs", counts.AuditLogs)
	fmt.Printf("\n  business records total: %d\n", counts.BusinessTotal())
}

func runClear(ctx context.Context, uc *maintenance.CleanupUseCase, companyID string, skipConfirm bool) {
	var gate maintenance.ConfirmationGate = stdinGate{}
	if skipConfirm {
		gate = maintenance.AutoApprove{}
	}
	report, err := uc.Run(ctx, companyID, gate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "limpieza fallida: %v\n", err)
		os.Exit(1)
	}
	if report.Cancelled {
		fmt.Println("Cancelled. No data was deleted.")
		return
	}
	fmt.Println("Cleanup complete.")
	fmt.Printf("  %-16s %d\n", "audit logs", report.AuditLogs)
	fmt.Printf("  %-16s %d\n", "sale items", report.SaleItems)
	fmt.Printf("  %-16s %d\n", "sales", report.Sales)
	fmt.Printf("  %-16s %d\n", "payments", report.Payments)
	fmt.Printf("  %-16s %d\n", "customers", report.Customers)
	fmt.Printf("  %-16s %d\n", "container items", report.ContainerItems)
	fmt.Printf("  %-16s %d\n", "containers", report.Containers)
	fmt.Printf("  %-16s %d\n", "supplier items", report.SupplierItems)
	fmt.Printf("  %-16s %d\n", "suppliers", report.Suppliers)
	fmt.Printf("\n  total deleted: %d\n", report.Total)
}

// stdinGate pide confirmación interactiva; solo la palabra exacta "yes" procede.
type stdinGate struct{}

func (stdinGate) Confirm(summary string) (bool, error) {
	fmt.Println(summary)
	fmt.Print(`Type "yes" to continue: `)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(line) == "yes", nil
}
