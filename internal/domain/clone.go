package domain

import "github.com/google/uuid"

// Duplication always mints new ids: a clone must never alias its source,
// so styles, payloads, and nested slices are deep-copied.

// CloneElement returns a structural copy of el with a freshly generated id.
func CloneElement(el Element) Element {
	out := el
	out.ID = uuid.New().String()
	out.Style = el.Style.Clone()
	if el.Animation != nil {
		a := *el.Animation
		out.Animation = &a
	}
	if el.Text != nil {
		p := *el.Text
		out.Text = &p
	}
	if el.Image != nil {
		p := *el.Image
		out.Image = &p
	}
	if el.Shape != nil {
		p := *el.Shape
		out.Shape = &p
	}
	if el.Video != nil {
		p := *el.Video
		out.Video = &p
	}
	if el.Chart != nil {
		p := *el.Chart
		p.Labels = append([]string(nil), el.Chart.Labels...)
		p.Values = append([]float64(nil), el.Chart.Values...)
		out.Chart = &p
	}
	if el.Table != nil {
		p := *el.Table
		p.Columns = append([]string(nil), el.Table.Columns...)
		p.Rows = make([][]string, len(el.Table.Rows))
		for i, row := range el.Table.Rows {
			p.Rows[i] = append([]string(nil), row...)
		}
		out.Table = &p
	}
	if el.Icon != nil {
		p := *el.Icon
		out.Icon = &p
	}
	if el.Code != nil {
		p := *el.Code
		out.Code = &p
	}
	return out
}

// CloneSlide returns a copy of s with a new slide id and every element
// cloned via CloneElement.
func CloneSlide(s Slide) Slide {
	out := s
	out.ID = uuid.New().String()
	out.Elements = make([]Element, len(s.Elements))
	for i, el := range s.Elements {
		out.Elements[i] = CloneElement(el)
	}
	if s.Background.Gradient != nil {
		g := *s.Background.Gradient
		g.Stops = append([]GradientStop(nil), s.Background.Gradient.Stops...)
		out.Background.Gradient = &g
	}
	return out
}
