package tui

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/MKhiriev/go-qr-history/internal/display"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/render"
	"github.com/MKhiriev/go-qr-history/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSurface struct{}

func (stubSurface) Image() image.Image            { return image.NewGray(image.Rect(0, 0, 2, 2)) }
func (stubSurface) Bitmap() [][]bool              { return [][]bool{{true, false}, {false, true}} }
func (stubSurface) EncodePNG() ([]byte, error)    { return []byte{0x89}, nil }
func (stubSurface) EncodeBase64() (string, error) { return "iQ==", nil }
func (stubSurface) DataURL() (string, error)      { return "data:image/png;base64,iQ==", nil }

// fakeQRService draws a stub surface for non-empty text, or hands the text
// to renderer when one is set.
type fakeQRService struct {
	container *display.Container
	renderer  render.Renderer
	texts     []string
	err       error
}

func newFakeQRService() *fakeQRService {
	return &fakeQRService{container: display.New()}
}

func (f *fakeQRService) Generate(_ context.Context, text string) *render.Completion {
	f.texts = append(f.texts, text)
	if text == "" {
		f.container.Hide()
		return render.Completed(nil)
	}
	f.container.Show()
	target := f.container.Clear()
	if f.renderer != nil {
		return f.renderer.Render(target, models.QRRequest{Text: text, Width: 180, Height: 180})
	}
	if f.err == nil {
		target.Draw(stubSurface{})
	}
	return render.Completed(f.err)
}

func (f *fakeQRService) Container() *display.Container { return f.container }
func (f *fakeQRService) Wait()                         {}
func (f *fakeQRService) Stop()                         {}

func ctrlKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runCmd(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next
}

func TestQRModel_GenerateRendersQR(t *testing.T) {
	svc := newFakeQRService()
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})
	m.message.SetValue("hello")

	next, cmd := m.Update(ctrlKey(tea.KeyCtrlS))
	assert.True(t, next.(qrModel).rendering)
	assert.Contains(t, next.View(), "Генерация")

	next = runCmd(t, next, cmd)
	got := next.(qrModel)

	assert.False(t, got.rendering)
	assert.Equal(t, []string{"hello"}, svc.texts)
	assert.Equal(t, "QR-код готов", got.status)
	assert.Contains(t, got.View(), "▀")
}

func TestQRModel_GenerateEmptyHides(t *testing.T) {
	svc := newFakeQRService()
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})

	next, cmd := m.Update(ctrlKey(tea.KeyCtrlS))
	got := runCmd(t, next, cmd).(qrModel)

	assert.False(t, svc.container.Visible())
	assert.Equal(t, "Поле пустое, QR-код скрыт", got.status)
	assert.NotContains(t, got.View(), "▀")
}

func TestQRModel_RenderErrorShowsOverlay(t *testing.T) {
	svc := newFakeQRService()
	svc.err = errors.New("boom")
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})
	m.message.SetValue("hello")

	next, cmd := m.Update(ctrlKey(tea.KeyCtrlS))
	got := runCmd(t, next, cmd).(qrModel)

	require.NotNil(t, got.overlay)
	assert.Contains(t, got.View(), "boom")

	closed, _ := got.Update(ctrlKey(tea.KeyEsc))
	assert.Nil(t, closed.(qrModel).overlay)
}

func TestQRModel_CopyDataURL(t *testing.T) {
	svc := newFakeQRService()
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m.message.SetValue("hello")

	next, cmd := m.Update(ctrlKey(tea.KeyCtrlS))
	next = runCmd(t, next, cmd)

	next, cmd = next.Update(ctrlKey(tea.KeyCtrlY))
	got := runCmd(t, next, cmd).(qrModel)

	assert.Equal(t, "data:image/png;base64,iQ==", copied)
	assert.Equal(t, "Скопировано", got.status)
}

func TestQRModel_CopyNothing(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.AppBuildInfo{})
	m.copyText = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}

	next, _ := m.Update(ctrlKey(tea.KeyCtrlY))
	assert.Equal(t, "Нечего копировать", next.(qrModel).status)
}

func TestQRModel_CopyFailureShowsOverlay(t *testing.T) {
	svc := newFakeQRService()
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})
	m.copyText = func(string) error { return errors.New("no clipboard") }
	m.message.SetValue("hello")

	next, cmd := m.Update(ctrlKey(tea.KeyCtrlS))
	next = runCmd(t, next, cmd)
	next, _ = next.Update(ctrlKey(tea.KeyCtrlY))

	require.NotNil(t, next.(qrModel).overlay)
	assert.Contains(t, next.View(), "no clipboard")
}

func TestQRModel_BuildInfoToggle(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.NewAppBuildInfo("1.2.3", "", ""))

	next, _ := m.Update(ctrlKey(tea.KeyCtrlB))
	assert.Contains(t, next.View(), "1.2.3")
	assert.Contains(t, next.View(), "N/A")

	next, _ = next.Update(ctrlKey(tea.KeyEsc))
	assert.False(t, next.(qrModel).showBuildInfo)
}

func TestQRModel_ClearStatus(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.AppBuildInfo{})
	m, _ = m.setStatus("Скопировано")

	next, _ := m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, next.(qrModel).status)
}

func TestQRModel_StaleClearKeepsNewerStatus(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.AppBuildInfo{})
	m, _ = m.setStatus("Нечего копировать")
	staleSeq := m.statusSeq
	m, _ = m.setStatus("Скопировано")

	next, _ := m.Update(clearStatusMsg{seq: staleSeq})
	assert.Equal(t, "Скопировано", next.(qrModel).status)

	next, _ = next.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, next.(qrModel).status)
}

func TestQRModel_SupersededRenderIsNotAnError(t *testing.T) {
	// Arrange
	r, err := render.NewQRRenderer("medium", logger.Nop())
	require.NoError(t, err)
	svc := newFakeQRService()
	svc.renderer = r
	m := newQRModel(context.Background(), svc, models.AppBuildInfo{})

	// Act: two ctrl+s presses before either render is reported.
	m.message.SetValue("first")
	next, firstCmd := m.Update(ctrlKey(tea.KeyCtrlS))
	model := next.(qrModel)
	model.message.SetValue("second")
	next, secondCmd := model.Update(ctrlKey(tea.KeyCtrlS))
	require.NotNil(t, firstCmd)
	require.NotNil(t, secondCmd)

	next, _ = next.Update(firstCmd())

	// Assert: the first render is outdated whatever its outcome.
	got := next.(qrModel)
	assert.Nil(t, got.overlay)
	assert.True(t, got.rendering)
	assert.Empty(t, got.status)

	next, _ = next.Update(secondCmd())
	got = next.(qrModel)
	assert.Nil(t, got.overlay)
	assert.False(t, got.rendering)
	assert.Equal(t, "QR-код готов", got.status)
	assert.Equal(t, []string{"first", "second"}, svc.texts)

	want, err := qrcode.New("second", qrcode.Medium)
	require.NoError(t, err)
	surface, ok := svc.container.Surface()
	require.True(t, ok)
	assert.Equal(t, want.Bitmap(), surface.Bitmap())
}

func TestQRModel_LatestSupersededRenderClearsSpinner(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.AppBuildInfo{})
	m.rendering = true
	m.renderSeq = 3

	next, _ := m.Update(renderDoneMsg{seq: 3, err: render.ErrSuperseded})

	got := next.(qrModel)
	assert.False(t, got.rendering)
	assert.Nil(t, got.overlay)
}

func TestQRModel_Quit(t *testing.T) {
	m := newQRModel(context.Background(), newFakeQRService(), models.AppBuildInfo{})

	_, cmd := m.Update(ctrlKey(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderQRBitmap(t *testing.T) {
	tests := []struct {
		name   string
		bitmap [][]bool
		want   string
	}{
		{name: "empty", bitmap: nil, want: ""},
		{name: "full pair", bitmap: [][]bool{{true}, {true}}, want: "█"},
		{name: "upper only", bitmap: [][]bool{{true}, {false}}, want: "▀"},
		{name: "lower only", bitmap: [][]bool{{false}, {true}}, want: "▄"},
		{name: "blank", bitmap: [][]bool{{false}, {false}}, want: " "},
		{name: "odd rows", bitmap: [][]bool{{true, false}, {true, true}, {false, true}}, want: "█▄\n ▀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderQRBitmap(tt.bitmap))
		})
	}
}

func TestErrorOverlay_View(t *testing.T) {
	withTitle := errorOverlayModel{title: "Ошибка копирования", message: "no clipboard"}.View()
	assert.Contains(t, withTitle, "Ошибка копирования")
	assert.Contains(t, withTitle, "no clipboard")
	assert.Contains(t, withTitle, "esc")

	untitled := errorOverlayModel{message: "boom"}.View()
	assert.Contains(t, untitled, "Ошибка")
	assert.Contains(t, untitled, "boom")
}
