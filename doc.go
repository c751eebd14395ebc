// Package isometric re-projects a top-down 2D tabletop scene into an
// isometric view on [Ebitengine].
//
// The whole scene is rotated and skewed once at its root. Every entity mesh
// then receives the reverse transform, so token and tile art stays upright
// while the ground plane is projected. Occlusion aids keep entities readable
// when tall tiles hide them.
//
// # Quick start
//
// A host owns the entity documents and their render nodes. It wires them to
// a [Session] and forwards lifecycle notifications:
//
//	canvas := isometric.NewCanvas(1280, 720)
//	sess := isometric.NewSession(canvas, settings, scene)
//
//	hero := &isometric.Movable{Placement: isometric.Placement{
//		ID: "hero", Footprint: isometric.Footprint{W: 1, H: 1},
//		Flags: isometric.DefaultFlags(), Mesh: heroSprite,
//	}}
//	sess.OnEntityCreated(hero)
//	sess.OnSceneReady()
//
//	// each frame
//	sess.Update(1.0 / 60)
//	canvas.Draw(screen)
//
// # Projection
//
// [Settings] and [SceneConfig] decide whether a scene is isometric and which
// [Preset] it uses. [NewProjection] turns them into the [Projection] read by
// [ApplyStage], [ApplyBackground] and [ApplyEntity]. Flat scenes reset every
// entity with [ResetEntity].
//
// # Occlusion
//
// Tiles linked to a [Wall] are duplicated above the scene when the control
// entity stands in front of the wall ([InFrontOf]) and can see it. Entities
// the control entity can see are duplicated too, so nothing it can see is
// hidden behind art. See [Overlay]. Movables hidden by tile art can
// instead get an outlined silhouette, see [Silhouettes].
//
// # Calibration
//
// [Calibration] measures a transformed square to derive preset constants:
// diagonal ratio, HUD angle and corner angles. The isocalib command prints
// the measurements and shows them interactively.
//
// # Logging
//
// The package is silent by default. Install a [log/slog] logger with
// [SetLogger]; sessions only log when [Settings.Debug] is set.
//
// [Ebitengine]: https://ebitengine.org
package isometric
