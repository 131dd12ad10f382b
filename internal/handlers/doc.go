// Package handlers turns key events into App mutations. It is the only
// code path, besides OnTick, through which the render loop changes state.
//
// Every entry point expects the caller to hold the App lock:
//
//	a.Lock()
//	handlers.Handle(a, models.RuneKey('d'))
//	a.Unlock()
//
// Keys on a table screen:
//
//	up/down/home/end   move the cursor
//	left/right         switch tabs
//	tab/shift+tab      switch server
//	enter              open details
//	r                  refresh
//	f / s              filter / search (s on a details screen: automatic search)
//	a                  add to library
//	d                  delete the selected row
//	c                  clear blocklist
//	u                  update (downloads, library, collections, item)
//	t / T / S          test indexer / test all / indexer settings; t on system: tasks
//	esc                dismiss error, reset filter or go back
//
// Destructive actions always go through a prompt. Single-step prompts are
// described by the Prompts table; left/right toggles yes/no and enter
// stages the request on the backend's StagedAction only when yes is
// selected. The delete and add dialogs step through a BlockSelection and
// stage their request on the final step.
package handlers
