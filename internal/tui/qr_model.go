package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-history/internal/render"
	"github.com/MKhiriev/go-qr-history/internal/service"
	"github.com/MKhiriev/go-qr-history/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

type qrModel struct {
	ctx       context.Context
	service   service.QRService
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	message       textarea.Model
	rendering     bool
	renderSeq     uint64
	status        string
	statusSeq     uint64
	overlay       *errorOverlayModel
	showBuildInfo bool
}

func newQRModel(ctx context.Context, svc service.QRService, buildInfo models.AppBuildInfo) qrModel {
	ta := textarea.New()
	ta.Placeholder = "Текст для QR-кода"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.Focus()

	return qrModel{
		ctx:       ctx,
		service:   svc,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		message:   ta,
	}
}

func (m qrModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m qrModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case renderDoneMsg:
		// only the latest ctrl+s owns the screen
		if msg.seq != m.renderSeq {
			return m, nil
		}
		m.rendering = false
		if errors.Is(msg.err, render.ErrSuperseded) {
			return m, nil
		}
		if msg.err != nil {
			m.overlay = &errorOverlayModel{
				title:   "Не удалось построить QR-код",
				message: msg.err.Error(),
			}
			return m, nil
		}
		if m.service.Container().Visible() {
			return m.setStatus("QR-код готов")
		}
		return m.setStatus("Поле пустое, QR-код скрыт")
	case copiedMsg:
		return m.setStatus("Скопировано")
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	return m, cmd
}

func (m qrModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.esc) || msg.Type == tea.KeyEnter {
			m.overlay = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.generate):
		m.rendering = true
		m.renderSeq++
		m.status = ""
		m.statusSeq++
		return m, waitRender(m.ctx, m.renderSeq, m.service.Generate(m.ctx, m.message.Value()))
	case key.Matches(msg, keys.copy):
		return m.copyDataURL()
	}

	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	return m, cmd
}

func (m qrModel) copyDataURL() (tea.Model, tea.Cmd) {
	container := m.service.Container()
	surface, ok := container.Surface()
	if !container.Visible() || !ok {
		return m.setStatus("Нечего копировать")
	}

	dataURL, err := surface.DataURL()
	if err == nil {
		err = m.copyText(dataURL)
	}
	if err != nil {
		m.overlay = &errorOverlayModel{title: "Ошибка копирования", message: err.Error()}
		return m, nil
	}

	return m, func() tea.Msg { return copiedMsg{} }
}

func (m qrModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("QR-КОД"))
	b.WriteString("\n\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")
	b.WriteString(m.qrView())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+s: сгенерировать  ctrl+y: копировать  ctrl+b: о программе  ctrl+c: выход"))

	return appStyle.Render(b.String())
}

func (m qrModel) qrView() string {
	if m.rendering {
		return helpStyle.Render("Генерация...")
	}

	container := m.service.Container()
	if !container.Visible() {
		return ""
	}
	surface, ok := container.Surface()
	if !ok {
		return ""
	}
	return qrStyle.Render(renderQRBitmap(surface.Bitmap()))
}

// setStatus shows text and schedules its removal. A newer status outlives
// the ticks scheduled for older ones.
func (m qrModel) setStatus(text string) (qrModel, tea.Cmd) {
	m.status = text
	m.statusSeq++
	return m, clearStatusAfter(statusTTL, m.statusSeq)
}

func waitRender(ctx context.Context, seq uint64, done *render.Completion) tea.Cmd {
	return func() tea.Msg {
		return renderDoneMsg{seq: seq, err: done.Wait(ctx)}
	}
}

func clearStatusAfter(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
