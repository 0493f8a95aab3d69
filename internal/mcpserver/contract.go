package mcpserver

// UsageGuide describes the note store to MCP clients.
const UsageGuide = `# Note Store

Notes live in named collections.

- A collection has an integer ` + "`id`" + ` and a unique, non-empty ` + "`name`" + `.
- A note has an integer ` + "`id`" + `, a free-form ` + "`body`" + ` and belongs to exactly one
  collection through ` + "`collection_id`" + `.
- Nothing is ever edited or deleted; tools only create and list.

## Workflow

1. Call ` + "`list_collections`" + ` to find the collection id.
2. If none fits, call ` + "`create_collection`" + ` with a new name. Names must be unique.
3. Call ` + "`create_note`" + ` with the collection id and the note body.
4. Call ` + "`list_notes`" + ` with a collection id to read its notes.

Creating a note in a collection that does not exist fails.
`
