package ui

import (
	"image"
	"strconv"

	"hanoi/internal/core"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect    image.Rectangle
	Label   string
	Enabled bool
}

// Hit reports whether an enabled button contains pt.
func (b Button) Hit(pt image.Point) bool {
	return b.Enabled && pointInRect(pt.X, pt.Y, b.Rect)
}

// Prompt is a modal question with one button per choice.
type Prompt struct {
	Title   string
	Message string
	Choices []string
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	dialogWidth      = 360
	dialogHeight     = 150
	dialogButtonH    = 28
	dialogButtonGap  = 8
	dialogButtonMaxW = 90
	dialogPadding    = 16
)

// dialogLayout centers a panel on the board and spreads one button per
// choice along its bottom edge.
func dialogLayout(board core.Size, choices []string) (image.Rectangle, []Button) {
	x := (board.W - dialogWidth) / 2
	y := (board.H - dialogHeight) / 2
	panel := image.Rect(x, y, x+dialogWidth, y+dialogHeight)
	if len(choices) == 0 {
		return panel, nil
	}

	inner := dialogWidth - 2*dialogPadding
	bw := (inner - (len(choices)-1)*dialogButtonGap) / len(choices)
	if bw > dialogButtonMaxW {
		bw = dialogButtonMaxW
	}
	rowW := len(choices)*bw + (len(choices)-1)*dialogButtonGap
	bx := panel.Min.X + (dialogWidth-rowW)/2
	by := panel.Max.Y - dialogPadding - dialogButtonH

	buttons := make([]Button, len(choices))
	for i, label := range choices {
		left := bx + i*(bw+dialogButtonGap)
		buttons[i] = Button{
			Rect:    image.Rect(left, by, left+bw, by+dialogButtonH),
			Label:   label,
			Enabled: true,
		}
	}
	return panel, buttons
}

// panelModel holds the HUD's controls and values independent of drawing.
type panelModel struct {
	source     core.ParameterProvider
	intSetter  core.IntParameterSetter
	boolSetter core.BoolParameterSetter
	width      int
	snapshot   core.ParameterSnapshot
	controls   []controlState
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newPanelModel(source any, width int) *panelModel {
	m := &panelModel{width: width}
	if p, ok := source.(core.ParameterProvider); ok {
		m.source = p
	}
	if p, ok := source.(core.ParameterControlsProvider); ok {
		controls := p.ParameterControls()
		m.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			m.controls[i] = controlState{control: ctrl, value: "--"}
		}
		m.layoutControls()
	}
	if s, ok := source.(core.IntParameterSetter); ok {
		m.intSetter = s
	}
	if s, ok := source.(core.BoolParameterSetter); ok {
		m.boolSetter = s
	}
	return m
}

func (m *panelModel) refresh() {
	if m.source == nil {
		m.snapshot = core.ParameterSnapshot{}
		return
	}
	m.snapshot = m.source.Parameters()
	for i := range m.controls {
		state := &m.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := m.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
			state.hasValue = true
		}
	}
}

// click applies the control under (x, y), in panel coordinates. It reports
// whether a control consumed the click.
func (m *panelModel) click(x, y int) bool {
	for i := range m.controls {
		state := &m.controls[i]
		if !state.hasValue {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			if pointInRect(x, y, state.minusRect) {
				m.adjust(state, -1)
				return true
			}
			if pointInRect(x, y, state.plusRect) {
				m.adjust(state, 1)
				return true
			}
		case core.ParamTypeBool:
			if pointInRect(x, y, state.plusRect) {
				m.toggle(state)
				return true
			}
		}
	}
	return false
}

func (m *panelModel) adjust(state *controlState, direction int) {
	if m.intSetter == nil || !m.canAdjust(state, direction) {
		return
	}
	target := state.control.Clamp(state.intValue + direction*step(state.control))
	if target == state.intValue {
		return
	}
	if m.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (m *panelModel) toggle(state *controlState) {
	if m.boolSetter == nil {
		return
	}
	target := !state.boolValue
	if m.boolSetter.SetBoolParameter(state.control.Key, target) {
		state.boolValue = target
		state.value = onOff(target)
	}
}

func (m *panelModel) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeInt || m.intSetter == nil {
		return false
	}
	target := state.intValue + direction*step(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max {
		return false
	}
	return true
}

func (m *panelModel) layoutControls() {
	if m.width <= 0 {
		return
	}
	for i := range m.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(m.width-panelPadding-buttonSize, buttonY, m.width-panelPadding, buttonY+buttonSize)
		if m.controls[i].control.Type == core.ParamTypeBool {
			plusRect.Min.X -= toggleExtra
		}
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		m.controls[i].top = top
		m.controls[i].minusRect = minusRect
		m.controls[i].plusRect = plusRect
	}
}

// infoTop is where read-only values start, below the controls.
func (m *panelModel) infoTop() int {
	return controlsTop + len(m.controls)*lineHeight + infoSpacing
}

// infoLines returns the read-only values of the snapshot in group order.
func (m *panelModel) infoLines() []core.Parameter {
	var out []core.Parameter
	for _, group := range m.snapshot.Groups {
		for _, param := range group.Params {
			if param.Type == core.ParamTypeText {
				out = append(out, param)
			}
		}
	}
	return out
}

func step(ctrl core.ParameterControl) int {
	if ctrl.Step <= 0 {
		return 1
	}
	return ctrl.Step
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	toggleExtra    = 12
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	infoLineHeight = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
