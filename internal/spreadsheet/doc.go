// Package spreadsheet reads and writes typed records as xlsx workbooks.
//
// A Schema describes how a record type maps onto a single sheet: the ordered
// list of columns, their header text, width, default cell value and the
// functions that convert a field to a cell and back. Workbook implements the
// Gateway contract on top of excelize.
//
//	wb := spreadsheet.NewWorkbook(spreadsheet.ProductSchema(), logger)
//	if err := wb.Write(ctx, products, "output/products.xlsx"); err != nil {
//	    return err
//	}
//	products, err := wb.Read(ctx, "output/products.xlsx")
//
// Failures carry an internal/errors type: IO for file system problems,
// SERIALIZATION for header or cell content that does not fit the schema.
package spreadsheet
