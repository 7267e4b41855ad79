package receipt

// extractionPrompt asks the model for structured line items only. Any value
// the model is unsure about must come back as null so the mapping layer can
// keep the item instead of rejecting it.
const extractionPrompt = `Analyze this receipt image. Extract each line item and format as a structured JSON array.
For each item, extract:
- item_name: The name of the product or service
- quantity: The quantity purchased if available
- unit_price: The price per unit if available
- total_price: The total price for this line item
- item_category: Categorize the item (e.g., materials, supplies, equipment, labor)

Output format:
{
  "receipt_items": [
    {
      "item_name": "Item description",
      "quantity": 2,
      "unit_price": 10.99,
      "total_price": 21.98,
      "item_category": "materials"
    }
  ],
  "receipt_total": 99.99,
  "receipt_date": "YYYY-MM-DD",
  "vendor_name": "Store Name"
}

Only respond with valid JSON, no additional text. If you're not sure about any value, use null.`
