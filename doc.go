// Package walkthrough is the interaction core of a first-person 3D house
// walkthrough built on [Ebitengine].
//
// It provides the scene graph, ray picking, a damped look-and-move camera
// controller, pointer click/drag classification and toggleable doors and
// windows that a model viewer needs. Rendering is a wireframe preview; a real
// renderer reads the same node tree and [OutlineSet].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cam := walkthrough.NewDefaultCamera(16.0 / 9.0)
//	scene, err := walkthrough.NewScene(cam, walkthrough.Surface{Width: 1280, Height: 720}, walkthrough.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ... add nodes ...
//	walkthrough.Run(scene, walkthrough.RunConfig{
//		Title: "House", Width: 1280, Height: 720,
//	})
//
// For full control, feed platform events to [Scene.Tracker] and
// [Scene.Keys] yourself and call [Scene.Tick] once per frame.
//
// # Scene graph
//
// A [Node] is either a group ([NewGroup]) or a mesh ([NewMesh]) carrying a
// [Geometry]: [Plane], [Box], [Sphere] or [TriangleMesh]. Local transforms
// (Position, Rotation as XYZ Euler angles, Scale) compose into world
// matrices lazily; call [Node.MarkDirty] after writing the fields directly,
// or use the setters.
//
// # Input
//
// [PointerTracker] takes DOM-shaped [PointerEvent] values in client pixels
// and publishes move, leftclick, rightclick, leftclickdrag and wheel events.
// A press released within the click tolerance (5 pixels by default) is a
// click; once the pointer leaves the tolerance the gesture is a drag and will
// not click on release.
//
// [KeyState] tracks held keys by case-insensitive name. [EbitenInput]
// fills both from Ebitengine's polled input.
//
// # Camera
//
// [CameraController] turns drags into look input, wheel ticks into forward
// or backward thrust (faster while the configured key, "shift" by default,
// is held) and right clicks into a hop toward the picked surface. Input
// decays exponentially each [CameraController.Update].
//
// # Interactive objects
//
// [InteractiveItems] matches picked meshes, or their parent groups, against
// a [Catalog] of object names. Hovering outlines the object; clicking
// toggles it open or closed with a one-second tween. Doors swing about Y,
// hinged windows tilt about X and sash windows slide along Y.
//
// # Configuration
//
// [Config] holds every tunable and the catalogue. [LoadConfigFile] reads it
// from YAML or TOML; zero fields take the values in [DefaultConfig].
//
// # Logging
//
// The package logs through a [go.uber.org/zap] logger that is silent until
// [SetLogger] is called.
//
// # Testing
//
// Synthetic input can be queued with [Scene.InjectClick], [Scene.InjectDrag],
// [Scene.InjectWheel] and friends, one event per tick, or scripted from
// JSON with [LoadTestScript]:
//
//	{"steps": [
//		{"action": "hover", "x": 640, "y": 360},
//		{"action": "click", "x": 640, "y": 360},
//		{"action": "wait", "frames": 60},
//		{"action": "key", "key": "shift", "down": true},
//		{"action": "wheel", "deltaY": -100}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package walkthrough
