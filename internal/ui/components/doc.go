// Package components provides the theme-aware building blocks of the
// customizer view, rendered with lipgloss.
//
// Themes are immutable values built by ThemeFor and passed explicitly through
// RenderContext, so switching theme is a matter of rendering with another
// context:
//
//	ctx := components.ContextFor(components.ThemeDark).WithWidth(72)
//	out := components.NewCard(components.NewText("hello")).WithTitle("Design").ViewWithContext(ctx)
//
// The three built-in themes (light, dark, colorful) form a cycle driven by
// ThemeName.Next.
package components
