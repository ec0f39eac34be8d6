package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	at "github.com/spiddekauga/aligntable"
)

// scene builds a box tree on the stage.
type scene func(stage *at.Stage) error

var scenes = map[string]scene{
	"dialog":  dialogScene,
	"toolbar": toolbarScene,
	"nested":  nestedScene,
	"scroll":  scrollScene,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildScene creates a stage of the given size, populates it and lays it
// out.
func buildScene(name string, width, height float64) (*at.Stage, error) {
	build, ok := scenes[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q, want one of %v", name, sceneNames())
	}

	stage := at.NewStage(width, height)
	if err := build(stage); err != nil {
		return nil, errors.Wrapf(err, "build scene %s", name)
	}
	stage.Validate()
	return stage, nil
}

// dialogScene is a centered window: a title, a message and two buttons
// pushed right by a fill spacer.
func dialogScene(stage *at.Stage) error {
	table := at.New(
		at.WithName("dialog"),
		at.WithCellPadding(at.PadAll(4)),
		at.WithRowAlign(at.Left, at.Middle),
	)
	table.Add(at.NewLabel("title", "Save changes?")).SetAlign(at.Center, at.Middle)
	table.LastRow().SetFillWidth(true)

	table.AddRow()
	table.Add(at.NewLabel("message", "Your document has unsaved changes.\nSave them before closing?"))

	table.AddRow()
	if err := table.AddEmpty().SetFillWidth(true); err != nil {
		return err
	}
	table.Add(at.NewWidget("cancel", 80, 24))
	table.Add(at.NewWidget("save", 80, 24))

	win := at.NewWindow("window")
	win.SetPad(at.PadAll(8))
	win.SetContent(table)
	stage.AddActor(win)

	// The window wraps the table; center the window on the stage.
	win.Validate()
	win.SetPosition(
		at.Truncate((stage.Width()-win.Width())/2),
		at.Truncate((stage.Height()-win.Height())/2),
	)
	return nil
}

// toolbarScene is a full-width bar pinned to the top of the stage with
// square icons on the left and a status label on the right.
func toolbarScene(stage *at.Stage) error {
	table := at.New(
		at.WithName("toolbar"),
		at.WithTableAlign(at.Left, at.Top),
		at.WithCellPadding(at.PadSymmetric(2, 4)),
		at.WithPad(at.PadAll(4)),
	)
	table.SetFillParentWidth(true)

	for i := 0; i < 4; i++ {
		c := table.Add(at.NewWidget(fmt.Sprintf("icon-%d", i), 32, 24))
		if err := c.SetBoxShaped(true); err != nil {
			return err
		}
	}
	if err := table.AddEmpty().SetFillWidth(true); err != nil {
		return err
	}
	table.Add(at.NewLabel("status", "Ready")).SetAlign(at.Right, at.Middle)

	stage.AddActor(table)
	return nil
}

// nestedScene fills the stage with a sidebar and a content table. The
// content table fills the remaining width and keeps a 16:9 preview.
func nestedScene(stage *at.Stage) error {
	root := at.New(at.WithName("root"), at.WithPad(at.PadAll(10)))
	root.SetFillParent(true)

	sidebar := at.New(at.WithName("sidebar"), at.WithRowAlign(at.Left, at.Top))
	for _, item := range []string{"Files", "Search", "Settings"} {
		sidebar.Add(at.NewLabel(item, item))
		sidebar.AddRow()
	}
	sidebar.LastRow().SetFillHeight(true)
	root.Add(sidebar).SetAlign(at.Left, at.Top)

	content := at.New(at.WithName("content"), at.WithCellPadding(at.PadAll(4)))
	if err := content.Add(at.NewWidget("preview", 160, 90)).SetKeepAspectRatio(true); err != nil {
		return err
	}
	if err := content.LastCell().SetFillWidth(true); err != nil {
		return err
	}
	content.AddRow()
	content.Add(at.NewLabel("caption", "Preview")).SetAlign(at.Center, at.Middle)

	if err := root.Add(content).SetFillWidth(true); err != nil {
		return err
	}
	root.LastRow().SetFillHeight(true)

	stage.AddActor(root)
	return nil
}

// scrollScene is a list taller than its scroll pane.
func scrollScene(stage *at.Stage) error {
	list := at.New(at.WithName("list"), at.WithRowAlign(at.Left, at.Middle))
	for i := 0; i < 40; i++ {
		if i > 0 {
			list.AddRow()
		}
		list.Add(at.NewLabel(fmt.Sprintf("item-%d", i), fmt.Sprintf("Item %d", i)))
	}

	sp := at.NewScrollPane("scroll", stage.Width()/2, stage.Height()/2)
	sp.SetContent(list)
	stage.AddActor(sp)
	sp.SetPosition(
		at.Truncate((stage.Width()-sp.Width())/2),
		at.Truncate((stage.Height()-sp.Height())/2),
	)
	return nil
}
