// Package model provides the intermediate representation (IR) shared by the
// extraction and layout stages of a deck conversion.
//
// The package holds two families of types. The first describes what was read
// out of the source document:
//
//   - [SlideRecord] - one classified slide fragment
//   - [StatCard], [TableBlock], [AlgorithmCard], [FeatureBar] - typed content blocks
//
// The second describes what will be written into the output container:
//
//	doc := model.NewDocument()
//	page := model.NewPage(model.Inches(13.333), model.Inches(7.5))
//	page.AddElement(&model.Shape{BBox: model.NewBBox(0, 0, model.Inches(1), model.Inches(1))})
//	doc.AddPage(page)
//
// # Elements
//
// All positioned content implements the [Element] interface. The concrete
// types are:
//
//   - [Shape] - rectangle with optional fill, outline and text frame
//   - [TextBox] - text frame without fill
//   - [Table] - grid of styled cells
//   - [Image] - encoded picture bytes
//
// # Geometry
//
// Positions and sizes are [Length] values in English Metric Units, the native
// unit of the output container. [BBox] is anchored at its top-left corner and
// grows downwards.
package model
