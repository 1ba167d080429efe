package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== WRITES ==========

func (r *payrollRepository) Upsert(ctx context.Context, p payroll.EmployeePayroll) (payroll.EmployeePayroll, error) {
	var stored payroll.EmployeePayroll

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employee_payrolls (
				employee_id, job_type, section, period_month, period_year,
				gross_pay, net_pay, end_month_payment, end_month_split
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (employee_id, job_type, period_month, period_year) DO UPDATE SET
				section = EXCLUDED.section,
				gross_pay = EXCLUDED.gross_pay,
				net_pay = EXCLUDED.net_pay,
				end_month_payment = EXCLUDED.end_month_payment,
				end_month_split = EXCLUDED.end_month_split,
				updated_at = NOW()
			RETURNING id, employee_id, job_type, section, period_month, period_year,
				gross_pay, net_pay, end_month_payment, end_month_split, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			p.EmployeeID, p.JobType, p.Section, p.PeriodMonth, p.PeriodYear,
			p.GrossPay, p.NetPay, p.EndMonthPayment, p.EndMonthSplit,
		).Scan(
			&stored.ID, &stored.EmployeeID, &stored.JobType, &stored.Section,
			&stored.PeriodMonth, &stored.PeriodYear,
			&stored.GrossPay, &stored.NetPay, &stored.EndMonthPayment, &stored.EndMonthSplit,
			&stored.CreatedAt, &stored.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert employee payroll: %w", err)
		}

		if err := r.replaceItemsTx(ctx, tx, stored.ID, p.Items); err != nil {
			return err
		}
		stored.Items = p.Items
		return nil
	})
	if err != nil {
		return payroll.EmployeePayroll{}, err
	}

	return stored, nil
}

func (r *payrollRepository) ReplaceItems(ctx context.Context, p payroll.EmployeePayroll) (payroll.EmployeePayroll, error) {
	var stored payroll.EmployeePayroll

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE employee_payrolls
			SET gross_pay = $1, net_pay = $2, end_month_payment = $3, end_month_split = $4, updated_at = NOW()
			WHERE employee_id = $5 AND job_type = $6 AND period_month = $7 AND period_year = $8
			RETURNING id, employee_id, job_type, section, period_month, period_year,
				gross_pay, net_pay, end_month_payment, end_month_split, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			p.GrossPay, p.NetPay, p.EndMonthPayment, p.EndMonthSplit,
			p.EmployeeID, p.JobType, p.PeriodMonth, p.PeriodYear,
		).Scan(
			&stored.ID, &stored.EmployeeID, &stored.JobType, &stored.Section,
			&stored.PeriodMonth, &stored.PeriodYear,
			&stored.GrossPay, &stored.NetPay, &stored.EndMonthPayment, &stored.EndMonthSplit,
			&stored.CreatedAt, &stored.UpdatedAt,
		)
		if err != nil {
			if err == pgx.ErrNoRows {
				return payroll.ErrPayrollNotFound
			}
			return fmt.Errorf("failed to update employee payroll: %w", err)
		}

		if err := r.replaceItemsTx(ctx, tx, stored.ID, p.Items); err != nil {
			return err
		}
		stored.Items = p.Items
		return nil
	})
	if err != nil {
		return payroll.EmployeePayroll{}, err
	}

	return stored, nil
}

// replaceItemsTx swaps a payroll's item rows wholesale; an engine rerun or a
// manual append always carries the full new list.
func (r *payrollRepository) replaceItemsTx(ctx context.Context, tx pgx.Tx, payrollID string, items []payroll.PayrollItem) error {
	if _, err := tx.Exec(ctx, `DELETE FROM payroll_items WHERE payroll_id = $1`, payrollID); err != nil {
		return fmt.Errorf("failed to clear payroll items: %w", err)
	}

	query := `
		INSERT INTO payroll_items (
			payroll_id, position, pay_code_id, description, pay_type,
			rate_unit, rate, quantity, amount, is_manual
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for i, item := range items {
		_, err := tx.Exec(ctx, query,
			payrollID, i, item.PayCodeID, item.Description, item.PayType,
			item.RateUnit, item.Rate, item.Quantity, item.Amount, item.IsManual,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payroll item: %w", err)
		}
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, employeeID, jobType string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM employee_payrolls
		WHERE employee_id = $1 AND job_type = $2 AND period_month = $3 AND period_year = $4
	`, employeeID, jobType, month, year)
	if err != nil {
		return fmt.Errorf("failed to delete employee payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// ========== READS ==========

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID, jobType string, month, year int) (payroll.EmployeePayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, job_type, section, period_month, period_year,
			   gross_pay, net_pay, end_month_payment, end_month_split, created_at, updated_at
		FROM employee_payrolls
		WHERE employee_id = $1 AND job_type = $2 AND period_month = $3 AND period_year = $4
	`

	var p payroll.EmployeePayroll
	err := q.QueryRow(ctx, query, employeeID, jobType, month, year).Scan(
		&p.ID, &p.EmployeeID, &p.JobType, &p.Section, &p.PeriodMonth, &p.PeriodYear,
		&p.GrossPay, &p.NetPay, &p.EndMonthPayment, &p.EndMonthSplit, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.EmployeePayroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.EmployeePayroll{}, fmt.Errorf("failed to get employee payroll: %w", err)
	}

	payrolls := []payroll.EmployeePayroll{p}
	if err := r.attachItems(ctx, payrolls); err != nil {
		return payroll.EmployeePayroll{}, err
	}

	return payrolls[0], nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.EmployeePayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, job_type, section, period_month, period_year,
			   gross_pay, net_pay, end_month_payment, end_month_split, created_at, updated_at
		FROM employee_payrolls
		WHERE period_month = $1 AND period_year = $2
		ORDER BY employee_id, job_type
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.EmployeePayroll
	for rows.Next() {
		var p payroll.EmployeePayroll
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.JobType, &p.Section, &p.PeriodMonth, &p.PeriodYear,
			&p.GrossPay, &p.NetPay, &p.EndMonthPayment, &p.EndMonthSplit, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee payrolls: %w", err)
	}

	if err := r.attachItems(ctx, payrolls); err != nil {
		return nil, err
	}

	return payrolls, nil
}

func (r *payrollRepository) attachItems(ctx context.Context, payrolls []payroll.EmployeePayroll) error {
	if len(payrolls) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, 0, len(payrolls))
	index := make(map[string]int, len(payrolls))
	for i, p := range payrolls {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	query := `
		SELECT payroll_id, pay_code_id, description, pay_type, rate_unit,
			   rate, quantity, amount, is_manual
		FROM payroll_items
		WHERE payroll_id = ANY($1)
		ORDER BY payroll_id, position
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payrollID string
		var item payroll.PayrollItem
		if err := rows.Scan(
			&payrollID, &item.PayCodeID, &item.Description, &item.PayType, &item.RateUnit,
			&item.Rate, &item.Quantity, &item.Amount, &item.IsManual,
		); err != nil {
			return fmt.Errorf("failed to scan payroll item: %w", err)
		}
		i := index[payrollID]
		payrolls[i].Items = append(payrolls[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payroll items: %w", err)
	}

	return nil
}
