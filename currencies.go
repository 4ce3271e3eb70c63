package moneyed

// DefaultCurrencyCode is the currency assumed when none is supplied.
const DefaultCurrencyCode = "BTC"

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, c := range builtinCurrencies {
		r.Register(c)
	}
	r.defaultCode = DefaultCurrencyCode
	return r
}

// builtinCurrencies is the ISO 4217 table plus the cryptocurrencies handled
// natively. Numeric is empty for units without an ISO numeric code. A few
// widely displayed currencies carry an intrinsic sign; the rest render with
// their code as a suffix.
var builtinCurrencies = []Currency{
	{Code: "AED", Numeric: "784", Name: "UAE Dirham", Countries: []string{"UNITED ARAB EMIRATES"}},
	{Code: "AFN", Numeric: "971", Name: "Afghani", Countries: []string{"AFGHANISTAN"}},
	{Code: "ALL", Numeric: "008", Name: "Lek", Countries: []string{"ALBANIA"}},
	{Code: "AMD", Numeric: "051", Name: "Armenian Dram", Countries: []string{"ARMENIA"}},
	{Code: "ANG", Numeric: "532", Name: "Netherlands Antillian Guilder", Countries: []string{"NETHERLANDS ANTILLES"}},
	{Code: "AOA", Numeric: "973", Name: "Kwanza", Countries: []string{"ANGOLA"}},
	{Code: "ARS", Numeric: "032", Name: "Argentine Peso", Countries: []string{"ARGENTINA"}},
	{Code: "AUD", Numeric: "036", Name: "Australian Dollar", Countries: []string{"AUSTRALIA", "CHRISTMAS ISLAND", "COCOS (KEELING) ISLANDS", "HEARD ISLAND AND MCDONALD ISLANDS", "KIRIBATI", "NAURU", "NORFOLK ISLAND", "TUVALU"}},
	{Code: "AWG", Numeric: "533", Name: "Aruban Guilder", Countries: []string{"ARUBA"}},
	{Code: "AZN", Numeric: "944", Name: "Azerbaijanian Manat", Countries: []string{"AZERBAIJAN"}},
	{Code: "BAM", Numeric: "977", Name: "Convertible Marks", Countries: []string{"BOSNIA AND HERZEGOVINA"}},
	{Code: "BBD", Numeric: "052", Name: "Barbados Dollar", Countries: []string{"BARBADOS"}},
	{Code: "BDT", Numeric: "050", Name: "Taka", Countries: []string{"BANGLADESH"}},
	{Code: "BGN", Numeric: "975", Name: "Bulgarian Lev", Countries: []string{"BULGARIA"}},
	{Code: "BHD", Numeric: "048", Name: "Bahraini Dinar", Countries: []string{"BAHRAIN"}},
	{Code: "BIF", Numeric: "108", Name: "Burundi Franc", Countries: []string{"BURUNDI"}},
	{Code: "BMD", Numeric: "060", Name: "Bermudian Dollar (customarily known as Bermuda Dollar)", Countries: []string{"BERMUDA"}},
	{Code: "BND", Numeric: "096", Name: "Brunei Dollar", Countries: []string{"BRUNEI DARUSSALAM"}},
	{Code: "BRL", Numeric: "986", Name: "Brazilian Real", Countries: []string{"BRAZIL"}},
	{Code: "BSD", Numeric: "044", Name: "Bahamian Dollar", Countries: []string{"BAHAMAS"}},
	{Code: "BTC", Name: "Bitcoin"},
	{Code: "BTN", Numeric: "064", Name: "Bhutanese ngultrum", Countries: []string{"BHUTAN"}},
	{Code: "BWP", Numeric: "072", Name: "Pula", Countries: []string{"BOTSWANA"}},
	{Code: "BYR", Numeric: "974", Name: "Belarussian Ruble", Countries: []string{"BELARUS"}},
	{Code: "BZD", Numeric: "084", Name: "Belize Dollar", Countries: []string{"BELIZE"}},
	{Code: "CAD", Numeric: "124", Name: "Canadian Dollar", Countries: []string{"CANADA"}},
	{Code: "CDF", Numeric: "976", Name: "Congolese franc", Countries: []string{"DEMOCRATIC REPUBLIC OF CONGO"}},
	{Code: "CHF", Numeric: "756", Name: "Swiss Franc", Countries: []string{"LIECHTENSTEIN"}},
	{Code: "CLP", Numeric: "152", Name: "Chilean peso", Countries: []string{"CHILE"}},
	{Code: "CNY", Numeric: "156", Name: "Yuan Renminbi", Countries: []string{"CHINA"}},
	{Code: "COP", Numeric: "170", Name: "Colombian peso", Countries: []string{"COLOMBIA"}},
	{Code: "CRC", Numeric: "188", Name: "Costa Rican Colon", Countries: []string{"COSTA RICA"}},
	{Code: "CUC", Numeric: "931", Name: "Cuban convertible peso", Countries: []string{"CUBA"}},
	{Code: "CUP", Numeric: "192", Name: "Cuban Peso", Countries: []string{"CUBA"}},
	{Code: "CVE", Numeric: "132", Name: "Cape Verde Escudo", Countries: []string{"CAPE VERDE"}},
	{Code: "CZK", Numeric: "203", Name: "Czech Koruna", Countries: []string{"CZECH REPUBLIC"}},
	{Code: "DGE", Name: "Dogecoin"},
	{Code: "DJF", Numeric: "262", Name: "Djibouti Franc", Countries: []string{"DJIBOUTI"}},
	{Code: "DRK", Name: "Darkcoin"},
	{Code: "DKK", Numeric: "208", Name: "Danish Krone", Countries: []string{"DENMARK", "FAROE ISLANDS", "GREENLAND"}},
	{Code: "DOP", Numeric: "214", Name: "Dominican Peso", Countries: []string{"DOMINICAN REPUBLIC"}},
	{Code: "DZD", Numeric: "012", Name: "Algerian Dinar", Countries: []string{"ALGERIA"}},
	{Code: "EEK", Numeric: "233", Name: "Kroon", Countries: []string{"ESTONIA"}},
	{Code: "EGP", Numeric: "818", Name: "Egyptian Pound", Countries: []string{"EGYPT"}},
	{Code: "ERN", Numeric: "232", Name: "Nakfa", Countries: []string{"ERITREA"}},
	{Code: "ETB", Numeric: "230", Name: "Ethiopian Birr", Countries: []string{"ETHIOPIA"}},
	{Code: "EUR", Numeric: "978", Name: "Euro", Sign: Sign{Suffix: " €"}, Countries: []string{"ANDORRA", "AUSTRIA", "BELGIUM", "FINLAND", "FRANCE", "FRENCH GUIANA", "FRENCH SOUTHERN TERRITORIES", "GERMANY", "GREECE", "GUADELOUPE", "IRELAND", "ITALY", "LUXEMBOURG", "MARTINIQUE", "MAYOTTE", "MONACO", "MONTENEGRO", "NETHERLANDS", "PORTUGAL", "R.UNION", "SAINT PIERRE AND MIQUELON", "SAN MARINO", "SLOVAKIA", "SLOVENIA", "SPAIN"}},
	{Code: "FJD", Numeric: "242", Name: "Fiji Dollar", Countries: []string{"FIJI"}},
	{Code: "FKP", Numeric: "238", Name: "Falkland Islands Pound", Countries: []string{"FALKLAND ISLANDS (MALVINAS)"}},
	{Code: "GBP", Numeric: "826", Name: "Pound Sterling", Sign: Sign{Prefix: "GB£"}, Countries: []string{"UNITED KINGDOM"}},
	{Code: "GEL", Numeric: "981", Name: "Lari", Countries: []string{"GEORGIA"}},
	{Code: "GHS", Numeric: "936", Name: "Ghana Cedi", Countries: []string{"GHANA"}},
	{Code: "GIP", Numeric: "292", Name: "Gibraltar Pound", Countries: []string{"GIBRALTAR"}},
	{Code: "GMD", Numeric: "270", Name: "Dalasi", Countries: []string{"GAMBIA"}},
	{Code: "GNF", Numeric: "324", Name: "Guinea Franc", Countries: []string{"GUINEA"}},
	{Code: "GTQ", Numeric: "320", Name: "Quetzal", Countries: []string{"GUATEMALA"}},
	{Code: "GYD", Numeric: "328", Name: "Guyana Dollar", Countries: []string{"GUYANA"}},
	{Code: "HKD", Numeric: "344", Name: "Hong Kong Dollar", Countries: []string{"HONG KONG"}},
	{Code: "HNL", Numeric: "340", Name: "Lempira", Countries: []string{"HONDURAS"}},
	{Code: "HRK", Numeric: "191", Name: "Croatian Kuna", Countries: []string{"CROATIA"}},
	{Code: "HTG", Numeric: "332", Name: "Haitian gourde", Countries: []string{"HAITI"}},
	{Code: "HUF", Numeric: "348", Name: "Forint", Countries: []string{"HUNGARY"}},
	{Code: "IDR", Numeric: "360", Name: "Rupiah", Countries: []string{"INDONESIA"}},
	{Code: "ILS", Numeric: "376", Name: "New Israeli Sheqel", Countries: []string{"ISRAEL"}},
	{Code: "IMP", Name: "Isle of Man pount", Countries: []string{"ISLE OF MAN"}},
	{Code: "INR", Numeric: "356", Name: "Indian Rupee", Countries: []string{"INDIA"}},
	{Code: "IQD", Numeric: "368", Name: "Iraqi Dinar", Countries: []string{"IRAQ"}},
	{Code: "IRR", Numeric: "364", Name: "Iranian Rial", Countries: []string{"IRAN"}},
	{Code: "ISK", Numeric: "352", Name: "Iceland Krona", Countries: []string{"ICELAND"}},
	{Code: "JMD", Numeric: "388", Name: "Jamaican Dollar", Countries: []string{"JAMAICA"}},
	{Code: "JOD", Numeric: "400", Name: "Jordanian Dinar", Countries: []string{"JORDAN"}},
	{Code: "JPY", Numeric: "392", Name: "Yen", Sign: Sign{Prefix: "¥"}, Countries: []string{"JAPAN"}},
	{Code: "KES", Numeric: "404", Name: "Kenyan Shilling", Countries: []string{"KENYA"}},
	{Code: "KGS", Numeric: "417", Name: "Som", Countries: []string{"KYRGYZSTAN"}},
	{Code: "KHR", Numeric: "116", Name: "Riel", Countries: []string{"CAMBODIA"}},
	{Code: "KMF", Numeric: "174", Name: "Comoro Franc", Countries: []string{"COMOROS"}},
	{Code: "KPW", Numeric: "408", Name: "North Korean Won", Countries: []string{"KOREA"}},
	{Code: "KRW", Numeric: "410", Name: "Won", Countries: []string{"KOREA"}},
	{Code: "KWD", Numeric: "414", Name: "Kuwaiti Dinar", Countries: []string{"KUWAIT"}},
	{Code: "KYD", Numeric: "136", Name: "Cayman Islands Dollar", Countries: []string{"CAYMAN ISLANDS"}},
	{Code: "KZT", Numeric: "398", Name: "Tenge", Countries: []string{"KAZAKHSTAN"}},
	{Code: "LAK", Numeric: "418", Name: "Kip", Countries: []string{"LAO PEOPLES DEMOCRATIC REPUBLIC"}},
	{Code: "LBP", Numeric: "422", Name: "Lebanese Pound", Countries: []string{"LEBANON"}},
	{Code: "LKR", Numeric: "144", Name: "Sri Lanka Rupee", Countries: []string{"SRI LANKA"}},
	{Code: "LRD", Numeric: "430", Name: "Liberian Dollar", Countries: []string{"LIBERIA"}},
	{Code: "LSL", Numeric: "426", Name: "Lesotho loti", Countries: []string{"LESOTHO"}},
	{Code: "LTC", Name: "Litecoin"},
	{Code: "LTL", Numeric: "440", Name: "Lithuanian Litas", Countries: []string{"LITHUANIA"}},
	{Code: "LVL", Numeric: "428", Name: "Latvian Lats", Countries: []string{"LATVIA"}},
	{Code: "LYD", Numeric: "434", Name: "Libyan Dinar", Countries: []string{"LIBYAN ARAB JAMAHIRIYA"}},
	{Code: "MAD", Numeric: "504", Name: "Moroccan Dirham", Countries: []string{"MOROCCO", "WESTERN SAHARA"}},
	{Code: "MDL", Numeric: "498", Name: "Moldovan Leu", Countries: []string{"MOLDOVA"}},
	{Code: "MGA", Numeric: "969", Name: "Malagasy Ariary", Countries: []string{"MADAGASCAR"}},
	{Code: "MKD", Numeric: "807", Name: "Denar", Countries: []string{"MACEDONIA"}},
	{Code: "MMK", Numeric: "104", Name: "Kyat", Countries: []string{"MYANMAR"}},
	{Code: "MNT", Numeric: "496", Name: "Tugrik", Countries: []string{"MONGOLIA"}},
	{Code: "MOP", Numeric: "446", Name: "Pataca", Countries: []string{"MACAO"}},
	{Code: "MRO", Numeric: "478", Name: "Ouguiya", Countries: []string{"MAURITANIA"}},
	{Code: "MUR", Numeric: "480", Name: "Mauritius Rupee", Countries: []string{"MAURITIUS"}},
	{Code: "MVR", Numeric: "462", Name: "Rufiyaa", Countries: []string{"MALDIVES"}},
	{Code: "MWK", Numeric: "454", Name: "Kwacha", Countries: []string{"MALAWI"}},
	{Code: "MXN", Numeric: "484", Name: "Mexican peso", Countries: []string{"MEXICO"}},
	{Code: "MYR", Numeric: "458", Name: "Malaysian Ringgit", Countries: []string{"MALAYSIA"}},
	{Code: "MZN", Numeric: "943", Name: "Metical", Countries: []string{"MOZAMBIQUE"}},
	{Code: "NAD", Numeric: "516", Name: "Namibian Dollar", Countries: []string{"NAMIBIA"}},
	{Code: "NGN", Numeric: "566", Name: "Naira", Countries: []string{"NIGERIA"}},
	{Code: "NIO", Numeric: "558", Name: "Cordoba Oro", Countries: []string{"NICARAGUA"}},
	{Code: "NOK", Numeric: "578", Name: "Norwegian Krone", Countries: []string{"BOUVET ISLAND", "NORWAY", "SVALBARD AND JAN MAYEN"}},
	{Code: "NPR", Numeric: "524", Name: "Nepalese Rupee", Countries: []string{"NEPAL"}},
	{Code: "NZD", Numeric: "554", Name: "New Zealand Dollar", Countries: []string{"COOK ISLANDS", "NEW ZEALAND", "NIUE", "PITCAIRN", "TOKELAU"}},
	{Code: "OMR", Numeric: "512", Name: "Rial Omani", Countries: []string{"OMAN"}},
	{Code: "PEN", Numeric: "604", Name: "Nuevo Sol", Countries: []string{"PERU"}},
	{Code: "PGK", Numeric: "598", Name: "Kina", Countries: []string{"PAPUA NEW GUINEA"}},
	{Code: "PHP", Numeric: "608", Name: "Philippine Peso", Countries: []string{"PHILIPPINES"}},
	{Code: "PKR", Numeric: "586", Name: "Pakistan Rupee", Countries: []string{"PAKISTAN"}},
	{Code: "PLN", Numeric: "985", Name: "Zloty", Sign: Sign{Suffix: " zł"}, Countries: []string{"POLAND"}},
	{Code: "PPC", Name: "Peercoin"},
	{Code: "PYG", Numeric: "600", Name: "Guarani", Countries: []string{"PARAGUAY"}},
	{Code: "QAR", Numeric: "634", Name: "Qatari Rial", Countries: []string{"QATAR"}},
	{Code: "RON", Numeric: "946", Name: "New Leu", Countries: []string{"ROMANIA"}},
	{Code: "RSD", Numeric: "941", Name: "Serbian Dinar", Countries: []string{"SERBIA"}},
	{Code: "RUB", Numeric: "643", Name: "Russian Ruble", Countries: []string{"RUSSIAN FEDERATION"}},
	{Code: "RWF", Numeric: "646", Name: "Rwanda Franc", Countries: []string{"RWANDA"}},
	{Code: "SAR", Numeric: "682", Name: "Saudi Riyal", Countries: []string{"SAUDI ARABIA"}},
	{Code: "SBD", Numeric: "090", Name: "Solomon Islands Dollar", Countries: []string{"SOLOMON ISLANDS"}},
	{Code: "SCR", Numeric: "690", Name: "Seychelles Rupee", Countries: []string{"SEYCHELLES"}},
	{Code: "SDG", Numeric: "938", Name: "Sudanese Pound", Countries: []string{"SUDAN"}},
	{Code: "SEK", Numeric: "752", Name: "Swedish Krona", Countries: []string{"SWEDEN"}},
	{Code: "SGD", Numeric: "702", Name: "Singapore Dollar", Countries: []string{"SINGAPORE"}},
	{Code: "SHP", Numeric: "654", Name: "Saint Helena Pound", Countries: []string{"SAINT HELENA"}},
	{Code: "SLL", Numeric: "694", Name: "Leone", Countries: []string{"SIERRA LEONE"}},
	{Code: "SOS", Numeric: "706", Name: "Somali Shilling", Countries: []string{"SOMALIA"}},
	{Code: "SRD", Numeric: "968", Name: "Surinam Dollar", Countries: []string{"SURINAME"}},
	{Code: "STD", Numeric: "678", Name: "Dobra", Countries: []string{"SAO TOME AND PRINCIPE"}},
	{Code: "SYP", Numeric: "760", Name: "Syrian Pound", Countries: []string{"SYRIAN ARAB REPUBLIC"}},
	{Code: "SZL", Numeric: "748", Name: "Lilangeni", Countries: []string{"SWAZILAND"}},
	{Code: "THB", Numeric: "764", Name: "Baht", Countries: []string{"THAILAND"}},
	{Code: "TJS", Numeric: "972", Name: "Somoni", Countries: []string{"TAJIKISTAN"}},
	{Code: "TMM", Numeric: "795", Name: "Manat", Countries: []string{"TURKMENISTAN"}},
	{Code: "TND", Numeric: "788", Name: "Tunisian Dinar", Countries: []string{"TUNISIA"}},
	{Code: "TOP", Numeric: "776", Name: "Paanga", Countries: []string{"TONGA"}},
	{Code: "TRY", Numeric: "949", Name: "Turkish Lira", Countries: []string{"TURKEY"}},
	{Code: "TTD", Numeric: "780", Name: "Trinidad and Tobago Dollar", Countries: []string{"TRINIDAD AND TOBAGO"}},
	{Code: "TVD", Name: "Tuvalu dollar", Countries: []string{"TUVALU"}},
	{Code: "TWD", Numeric: "901", Name: "New Taiwan Dollar", Countries: []string{"TAIWAN"}},
	{Code: "TZS", Numeric: "834", Name: "Tanzanian Shilling", Countries: []string{"TANZANIA"}},
	{Code: "UAH", Numeric: "980", Name: "Hryvnia", Countries: []string{"UKRAINE"}},
	{Code: "UGX", Numeric: "800", Name: "Uganda Shilling", Countries: []string{"UGANDA"}},
	{Code: "USD", Numeric: "840", Name: "US Dollar", Sign: Sign{Prefix: "US$"}, Countries: []string{"AMERICAN SAMOA", "BRITISH INDIAN OCEAN TERRITORY", "ECUADOR", "GUAM", "MARSHALL ISLANDS", "MICRONESIA", "NORTHERN MARIANA ISLANDS", "PALAU", "PUERTO RICO", "TIMOR-LESTE", "TURKS AND CAICOS ISLANDS", "UNITED STATES", "UNITED STATES MINOR OUTLYING ISLANDS", "VIRGIN ISLANDS (BRITISH)", "VIRGIN ISLANDS (U.S.)"}},
	{Code: "UYU", Numeric: "858", Name: "Uruguayan peso", Countries: []string{"URUGUAY"}},
	{Code: "UZS", Numeric: "860", Name: "Uzbekistan Sum", Countries: []string{"UZBEKISTAN"}},
	{Code: "VEF", Numeric: "937", Name: "Bolivar Fuerte", Countries: []string{"VENEZUELA"}},
	{Code: "VND", Numeric: "704", Name: "Dong", Countries: []string{"VIET NAM"}},
	{Code: "VUV", Numeric: "548", Name: "Vatu", Countries: []string{"VANUATU"}},
	{Code: "WST", Numeric: "882", Name: "Tala", Countries: []string{"SAMOA"}},
	{Code: "XAF", Numeric: "950", Name: "CFA franc BEAC", Countries: []string{"CAMEROON", "CENTRAL AFRICAN REPUBLIC", "REPUBLIC OF THE CONGO", "CHAD", "EQUATORIAL GUINEA", "GABON"}},
	{Code: "XAG", Numeric: "961", Name: "Silver"},
	{Code: "XAU", Numeric: "959", Name: "Gold"},
	{Code: "XBA", Numeric: "955", Name: "Bond Markets Units European Composite Unit (EURCO)"},
	{Code: "XBB", Numeric: "956", Name: "European Monetary Unit (E.M.U.-6)"},
	{Code: "XBC", Numeric: "957", Name: "European Unit of Account 9(E.U.A.-9)"},
	{Code: "XBD", Numeric: "958", Name: "European Unit of Account 17(E.U.A.-17)"},
	{Code: "XCD", Numeric: "951", Name: "East Caribbean Dollar", Countries: []string{"ANGUILLA", "ANTIGUA AND BARBUDA", "DOMINICA", "GRENADA", "MONTSERRAT", "SAINT KITTS AND NEVIS", "SAINT LUCIA", "SAINT VINCENT AND THE GRENADINES"}},
	{Code: "XDR", Numeric: "960", Name: "SDR", Countries: []string{"INTERNATIONAL MONETARY FUND (I.M.F)"}},
	{Code: "XFO", Name: "Gold-Franc"},
	{Code: "XFU", Name: "UIC-Franc"},
	{Code: "XOF", Numeric: "952", Name: "CFA Franc BCEAO", Countries: []string{"BENIN", "BURKINA FASO", "COTE D'IVOIRE", "GUINEA-BISSAU", "MALI", "NIGER", "SENEGAL", "TOGO"}},
	{Code: "XPD", Numeric: "964", Name: "Palladium"},
	{Code: "XPF", Numeric: "953", Name: "CFP Franc", Countries: []string{"FRENCH POLYNESIA", "NEW CALEDONIA", "WALLIS AND FUTUNA"}},
	{Code: "XPT", Numeric: "962", Name: "Platinum"},
	{Code: "XTS", Numeric: "963", Name: "Codes specifically reserved for testing purposes"},
	{Code: "YER", Numeric: "886", Name: "Yemeni Rial", Countries: []string{"YEMEN"}},
	{Code: "ZAR", Numeric: "710", Name: "Rand", Countries: []string{"SOUTH AFRICA"}},
	{Code: "ZMK", Numeric: "894", Name: "Kwacha", Countries: []string{"ZAMBIA"}},
	{Code: "ZWD", Numeric: "716", Name: "Zimbabwe Dollar A/06", Countries: []string{"ZIMBABWE"}},
	{Code: "ZWL", Numeric: "932", Name: "Zimbabwe dollar A/09", Countries: []string{"ZIMBABWE"}},
	{Code: "ZWN", Numeric: "942", Name: "Zimbabwe dollar A/08", Countries: []string{"ZIMBABWE"}},
}
