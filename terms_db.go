package rethinkdb

// DB selects a database by name.
func DB(name string) Term { return newTermFromArgs(termDb, name) }

// DBCreate creates a new database.
func DBCreate(name string) Term { return newTermFromArgs(termDbCreate, name) }

// DBDrop drops a database.
func DBDrop(name string) Term { return newTermFromArgs(termDbDrop, name) }

// DBList lists every database on the server.
func DBList() Term { return newTermFromArgs(termDbList) }

// Table selects a table in the default database.
func Table(name string) Term { return newTermFromArgs(termTable, name) }

// Table selects a table within db.
func (db Term) Table(name string) Term { return newTermFromParent(termTable, db, name) }

// TableCreate creates a table in db.
func (db Term) TableCreate(name string) Term { return newTermFromParent(termTableCreate, db, name) }

// TableDrop drops a table in db.
func (db Term) TableDrop(name string) Term { return newTermFromParent(termTableDrop, db, name) }

// TableList lists every table in db.
func (db Term) TableList() Term { return newTermFromParent(termTableList, db) }
