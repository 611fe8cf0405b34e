package analytics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

// CycleState etapa del ciclo de consulta del reporte.
type CycleState string

const (
	StateIdle       CycleState = "idle"
	StateValidating CycleState = "validating"
	StateLoading    CycleState = "loading"
	StateSuccess    CycleState = "success"
	StateFailed     CycleState = "failed"
)

// DefaultRequestTimeout tope de cada consulta al backend si no se configura otro.
const DefaultRequestTimeout = 10 * time.Second

// ProfitLossSnapshot copia inmutable del estado del ciclo.
type ProfitLossSnapshot struct {
	State     CycleState
	StartDate string
	EndDate   string
	Report    *entity.ProfitLossReport
	Error     string
}

// ProfitLossCycle ciclo idle → validating → loading → success|failed de una sesión.
// Como máximo una consulta en vuelo; un envío durante loading se rechaza sin llamar
// al backend. Tras Close cualquier respuesta pendiente se descarta.
type ProfitLossCycle struct {
	gateway ports.ReportGateway
	timeout time.Duration
	log     *logger.Logger

	mu        sync.Mutex
	state     CycleState
	startDate string
	endDate   string
	report    *entity.ProfitLossReport
	errMsg    string
	closed    bool
}

// NewProfitLossCycle construye un ciclo en estado idle.
func NewProfitLossCycle(gateway ports.ReportGateway, timeout time.Duration, log *logger.Logger) *ProfitLossCycle {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProfitLossCycle{gateway: gateway, timeout: timeout, log: log, state: StateIdle}
}

// Submit valida el rango y, si es correcto, consulta el reporte.
//
//   - en loading: domain.ErrRequestInFlight, sin llamada.
//   - rango inválido: vuelve a idle con el mensaje, sin llamada.
//   - éxito: guarda el reporte y limpia el error anterior.
//   - fallo: guarda el mensaje y limpia el reporte anterior.
//   - cerrado mientras esperaba: domain.ErrSessionClosed y el resultado no se aplica.
func (c *ProfitLossCycle) Submit(ctx context.Context, startDate, endDate string) (*entity.ProfitLossReport, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, domain.ErrSessionClosed
	}
	if c.state == StateLoading {
		c.mu.Unlock()
		return nil, domain.ErrRequestInFlight
	}
	c.state = StateValidating
	if _, _, err := aggregate.ValidateRange(startDate, endDate); err != nil {
		c.state = StateIdle
		c.errMsg = err.Error()
		c.mu.Unlock()
		return nil, err
	}
	c.state = StateLoading
	c.startDate, c.endDate = startDate, endDate
	c.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	report, err := c.gateway.GetProfitLossReport(reqCtx, startDate, endDate)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.log.Debug().Str("start_date", startDate).Str("end_date", endDate).Msg("respuesta descartada: sesión cerrada")
		return nil, domain.ErrSessionClosed
	}
	if err != nil {
		c.state = StateFailed
		c.errMsg = failureMessage(err)
		c.report = nil
		return nil, err
	}
	if mismatch := aggregate.CheckGrossProfit(*report); mismatch != nil {
		c.log.Warn().Err(mismatch).Str("start_date", startDate).Str("end_date", endDate).Msg("reporte inconsistente")
	}
	c.state = StateSuccess
	c.errMsg = ""
	c.report = report

	out := *report
	return &out, nil
}

// Snapshot estado actual para consulta.
func (c *ProfitLossCycle) Snapshot() ProfitLossSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := ProfitLossSnapshot{
		State:     c.state,
		StartDate: c.startDate,
		EndDate:   c.endDate,
		Error:     c.errMsg,
	}
	if c.report != nil {
		r := *c.report
		s.Report = &r
	}
	return s
}

// Close marca el ciclo como terminado; las respuestas que lleguen después se ignoran.
func (c *ProfitLossCycle) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.report = nil
}

// failureMessage mensaje para mostrar: el del backend si lo hay.
func failureMessage(err error) string {
	var se *domain.ServerError
	switch {
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	case errors.Is(err, domain.ErrNetwork):
		return "no se pudo conectar con el servidor"
	}
	return err.Error()
}

// ─── Registro por sesión ──────────────────────────────────────────────────────

// ProfitLossRegistry un ciclo por sesión. Implementa auth.SessionCloser.
// Los ciclos de sesiones abandonadas (sin logout) se liberan con SweepIdle.
type ProfitLossRegistry struct {
	gateway ports.ReportGateway
	timeout time.Duration
	log     *logger.Logger

	mu     sync.Mutex
	cycles map[string]*registryEntry
}

type registryEntry struct {
	cycle    *ProfitLossCycle
	lastUsed time.Time
}

// NewProfitLossRegistry construye el registro vacío.
func NewProfitLossRegistry(gateway ports.ReportGateway, timeout time.Duration, log *logger.Logger) *ProfitLossRegistry {
	if log == nil {
		log = logger.Nop()
	}
	return &ProfitLossRegistry{
		gateway: gateway,
		timeout: timeout,
		log:     log.Component("profit_loss"),
		cycles:  make(map[string]*registryEntry),
	}
}

// Cycle devuelve el ciclo de la sesión, creándolo si no existe.
func (r *ProfitLossRegistry) Cycle(sessionID string) *ProfitLossCycle {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cycles[sessionID]
	if !ok {
		e = &registryEntry{cycle: NewProfitLossCycle(r.gateway, r.timeout, r.log)}
		r.cycles[sessionID] = e
	}
	e.lastUsed = time.Now()
	return e.cycle
}

// Remove cierra y olvida el ciclo de la sesión. Idempotente.
func (r *ProfitLossRegistry) Remove(sessionID string) {
	r.mu.Lock()
	e, ok := r.cycles[sessionID]
	delete(r.cycles, sessionID)
	r.mu.Unlock()
	if ok {
		e.cycle.Close()
	}
}

// SweepIdle cierra los ciclos sin uso desde hace maxIdle o más y devuelve cuántos
// liberó. Con maxIdle igual a la vida del token, un ciclo así pertenece a una
// sesión ya vencida.
func (r *ProfitLossRegistry) SweepIdle(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	var stale []*ProfitLossCycle
	for sid, e := range r.cycles {
		if now.Sub(e.lastUsed) >= maxIdle {
			stale = append(stale, e.cycle)
			delete(r.cycles, sid)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	if len(stale) > 0 {
		r.log.Debug().Int("liberados", len(stale)).Msg("ciclos de sesiones abandonadas")
	}
	return len(stale)
}

// StartJanitor barre cada interval los ciclos inactivos por maxIdle hasta que ctx termine.
// maxIdle <= 0 no arranca nada.
func (r *ProfitLossRegistry) StartJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	if interval <= 0 {
		interval = maxIdle
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r.SweepIdle(now, maxIdle)
			}
		}
	}()
}

// Len número de ciclos vivos.
func (r *ProfitLossRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cycles)
}
