package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employeesalary"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	payrollerrors "github.com/syrene4545/attendance-tracker-sub001/internal/payroll/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (BreakdownResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)
	Cancel(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)
	RequestPayslip(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipRequestResponse, error)
	GeneratePayslip(ctx context.Context, companyID, id string) (PayrollResponse, error)
	DownloadPayslip(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipFile, error)
}

// SalaryLookup resolves the base salary in force on a date.
type SalaryLookup interface {
	CurrentFor(ctx context.Context, companyID, employeeID string, asOf time.Time) (employeesalary.EmployeeSalaryResponse, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	db       *sql.DB
	repo     Repository
	salaries SalaryLookup
	rules    *config.PayrollRules
	outbox   kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	salaries SalaryLookup,
	rules *config.PayrollRules,
	outbox kafka.OutboxRepository,
	logger *zap.Logger,
	opts ...Option,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		db:       db,
		repo:     repo,
		salaries: salaries,
		rules:    rules,
		outbox:   outbox,
		now:      time.Now,
		logger:   logger.Named("payroll.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParsePeriod returns the first and last calendar day of a YYYY-MM period.
func ParsePeriod(period string) (time.Time, time.Time, error) {
	start, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriodFormat
	}
	return start, start.AddDate(0, 1, -1), nil
}

type computation struct {
	base, gross, deduction, tax, net int64
	items                            []PayrollItem
}

// compute builds the item list and totals. Tax is charged on gross less the social contribution.
func (s *service) compute(companyID uuid.UUID, base int64, req GeneratePayrollRequest) computation {
	c := computation{base: base, gross: base}
	add := func(kind, name string, amount int64) {
		c.items = append(c.items, PayrollItem{
			ID:        uuid.New(),
			CompanyID: companyID,
			ItemType:  kind,
			Name:      name,
			Amount:    amount,
			Position:  len(c.items),
		})
	}

	add(ItemEarning, "Base salary", base)
	for _, a := range req.Allowances {
		add(ItemEarning, a.Name, a.Amount)
		c.gross += a.Amount
	}

	contribution := s.rules.ContributionFor(c.gross)
	add(ItemDeduction, "Social contribution", contribution)
	c.deduction = contribution
	for _, d := range req.Deductions {
		add(ItemDeduction, d.Name, d.Amount)
		c.deduction += d.Amount
	}

	c.tax = s.rules.Tax(c.gross - contribution)
	add(ItemTax, "Income tax", c.tax)

	c.net = c.gross - c.deduction - c.tax
	return c
}

func (s *service) Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	periodStart, periodEnd, err := ParsePeriod(req.Period)
	if err != nil {
		return PayrollResponse{}, err
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !belongs {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotInCompany
	}

	salary, err := s.salaries.CurrentFor(ctx, companyID, req.EmployeeID, periodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	calc := s.compute(companyUUID, salary.BaseSalary, req)
	if calc.net < 0 {
		return PayrollResponse{}, payrollerrors.ErrNegativeNetSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByPeriodForUpdate(ctx, companyID, req.EmployeeID, req.Period)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollResponse{}, err
	}

	var p *Payroll
	if existing == nil {
		p = &Payroll{
			ID:          uuid.New(),
			CompanyID:   companyUUID,
			EmployeeID:  employeeUUID,
			Period:      req.Period,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Status:      StatusDraft,
			CreatedBy:   actorUUID,
		}
	} else {
		if existing.Status != StatusDraft {
			return PayrollResponse{}, payrollerrors.ErrPayrollLocked
		}
		p = existing
	}

	p.BaseSalary = calc.base
	p.GrossSalary = calc.gross
	p.TotalDeduction = calc.deduction
	p.Tax = calc.tax
	p.NetSalary = calc.net
	for i := range calc.items {
		calc.items[i].PayrollID = p.ID
	}

	if existing == nil {
		p.Items = calc.items
		if err := qtx.Create(ctx, p); err != nil {
			return PayrollResponse{}, mapRepositoryError(err)
		}
	} else {
		if err := qtx.Update(ctx, p); err != nil {
			return PayrollResponse{}, mapRepositoryError(err)
		}
		if err := qtx.ReplaceItems(ctx, p.ID.String(), calc.items); err != nil {
			return PayrollResponse{}, err
		}
		p.Items = calc.items
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	l.Info("payroll generated",
		zap.String("payroll_id", p.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
		zap.Bool("regenerated", existing != nil),
		zap.Int64("net_salary", p.NetSalary),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, payrollerrors.ErrInvalidCompanyID
	}
	if filter.Period != "" {
		if _, _, err := ParsePeriod(filter.Period); err != nil {
			return nil, err
		}
	}
	if !canReadAll {
		filter.EmployeeID = actorID
	}

	payrolls, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		if !canReadAll && !visibleToEmployee(p) {
			continue
		}
		res = append(res, mapToResponse(p))
	}
	return res, nil
}

// visibleToEmployee hides drafts and cancelled runs from the employee's own view.
func visibleToEmployee(p Payroll) bool {
	return p.Status == StatusApproved || p.Status == StatusPaid
}

func (s *service) findVisible(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (*Payroll, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !canReadAll && (p.EmployeeID.String() != actorID || !visibleToEmployee(*p)) {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayrollResponse, error) {
	p, err := s.findVisible(ctx, companyID, actorID, canReadAll, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetBreakdown(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (BreakdownResponse, error) {
	p, err := s.findVisible(ctx, companyID, actorID, canReadAll, id)
	if err != nil {
		return BreakdownResponse{}, err
	}

	resp := BreakdownResponse{
		PayrollID:      p.ID.String(),
		Period:         p.Period,
		Earnings:       []PayrollItemResponse{},
		Deductions:     []PayrollItemResponse{},
		Tax:            p.Tax,
		GrossSalary:    p.GrossSalary,
		TotalDeduction: p.TotalDeduction,
		NetSalary:      p.NetSalary,
	}
	for _, it := range p.Items {
		switch it.ItemType {
		case ItemEarning:
			resp.Earnings = append(resp.Earnings, mapItem(it))
		case ItemDeduction:
			resp.Deductions = append(resp.Deductions, mapItem(it))
		}
	}
	return resp, nil
}

func (s *service) transition(ctx context.Context, companyID, id string, event string, apply func(*Payroll) error) (PayrollResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := apply(p); err != nil {
		return PayrollResponse{}, err
	}
	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	l.Info("payroll "+event, zap.String("payroll_id", id), zap.String("status", p.Status))
	return mapToResponse(*p), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	return s.transition(ctx, companyID, id, "approved", func(p *Payroll) error {
		if p.Status != StatusDraft {
			return payrollerrors.ErrInvalidStatusTransition
		}
		now := s.now().UTC()
		p.Status = StatusApproved
		p.ApprovedBy = &actorUUID
		p.ApprovedAt = &now
		return nil
	})
}

func (s *service) MarkPaid(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	return s.transition(ctx, companyID, id, "paid", func(p *Payroll) error {
		if p.Status != StatusApproved {
			return payrollerrors.ErrInvalidStatusTransition
		}
		now := s.now().UTC()
		p.Status = StatusPaid
		p.PaidAt = &now
		return nil
	})
}

func (s *service) Cancel(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	return s.transition(ctx, companyID, id, "cancelled", func(p *Payroll) error {
		if p.Status != StatusDraft {
			return payrollerrors.ErrInvalidStatusTransition
		}
		p.Status = StatusCancelled
		return nil
	})
}

func (s *service) RequestPayslip(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipRequestResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayslipRequestResponse{}, mapRepositoryError(err)
	}
	if !canReadAll && p.EmployeeID.String() != actorID {
		return PayslipRequestResponse{}, payrollerrors.ErrPayrollNotFound
	}
	if !visibleToEmployee(*p) {
		return PayslipRequestResponse{}, payrollerrors.ErrPayslipNotAllowed
	}

	now := s.now().UTC()
	p.PayslipRequestedAt = &now
	if err := qtx.Update(ctx, p); err != nil {
		return PayslipRequestResponse{}, mapRepositoryError(err)
	}

	event := events.PayrollPayslipRequestedEvent{
		EventType:   events.PayrollPayslipRequestedType,
		PayrollID:   id,
		CompanyID:   companyID,
		RequestedBy: actorID,
		OccurredAt:  now,
	}
	ev, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), "payroll", id, event.EventType, events.PayrollPayslipRequestedTopic, event)
	if err != nil {
		return PayslipRequestResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		l.Error("payslip request outbox persist failed", zap.Error(err))
		return PayslipRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipRequestResponse{}, err
	}

	l.Info("payslip requested", zap.String("payroll_id", id))
	return PayslipRequestResponse{PayrollID: id, RequestedAt: now.Format(time.RFC3339)}, nil
}

// GeneratePayslip renders and stores the PDF. The payslip consumer calls it once per request event.
func (s *service) GeneratePayslip(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !visibleToEmployee(*p) {
		return PayrollResponse{}, payrollerrors.ErrPayslipNotAllowed
	}

	currency := ""
	if s.rules != nil {
		currency = s.rules.Currency
	}

	now := s.now().UTC()
	slip := &Payslip{
		PayrollID:   p.ID,
		CompanyID:   p.CompanyID,
		FileName:    fmt.Sprintf("payslip-%s-%s.pdf", p.Period, p.EmployeeID.String()[:8]),
		Content:     renderPDF(payslipLines(*p, currency)),
		GeneratedAt: now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.SavePayslip(ctx, slip); err != nil {
		return PayrollResponse{}, err
	}
	p.PayslipGeneratedAt = &now
	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	l.Info("payslip generated",
		zap.String("payroll_id", id),
		zap.Int("bytes", len(slip.Content)),
	)
	return mapToResponse(*p), nil
}

func (s *service) DownloadPayslip(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (PayslipFile, error) {
	if _, err := s.findVisible(ctx, companyID, actorID, canReadAll, id); err != nil {
		return PayslipFile{}, err
	}

	slip, err := s.repo.FindPayslip(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipFile{}, payrollerrors.ErrPayslipNotReady
		}
		return PayslipFile{}, err
	}
	return PayslipFile{FileName: slip.FileName, Content: slip.Content}, nil
}

func mapItem(it PayrollItem) PayrollItemResponse {
	return PayrollItemResponse{Type: it.ItemType, Name: it.Name, Amount: it.Amount}
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID.String(),
		CompanyID:      p.CompanyID.String(),
		EmployeeID:     p.EmployeeID.String(),
		Period:         p.Period,
		PeriodStart:    p.PeriodStart.Format(dateLayout),
		PeriodEnd:      p.PeriodEnd.Format(dateLayout),
		BaseSalary:     p.BaseSalary,
		GrossSalary:    p.GrossSalary,
		TotalDeduction: p.TotalDeduction,
		Tax:            p.Tax,
		NetSalary:      p.NetSalary,
		Status:         p.Status,
		CreatedBy:      p.CreatedBy.String(),
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if p.PayslipGeneratedAt != nil {
		v := p.PayslipGeneratedAt.Format(time.RFC3339)
		resp.PayslipGeneratedAt = &v
	}
	for _, it := range p.Items {
		resp.Items = append(resp.Items, mapItem(it))
	}
	return resp
}
