// Package view provides the stateless renderers of the insights dashboard.
//
// Every function here takes plain values and returns a string; the dashboard
// model in package tui decides what to show and when.
//
// # Components
//
//   - [RenderLoading]: the full-screen placeholder shown until data arrives
//   - [RenderHeader]: the title bar with the live badge
//   - [BuildSections] and [RenderSection]: the three insight panels
//   - [RenderNotice]: the freeze acknowledgment
//   - [RenderFreezePrompt]: the district input line
//   - [HelpBarView]: key hints for the current mode
//
// # Layout
//
// A section lays its narrative column beside the chart when the terminal is
// at least [SideBySideWidth] columns wide and stacks them otherwise.
package view
