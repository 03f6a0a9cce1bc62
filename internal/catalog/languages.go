package catalog

// languages is matched in order against tokens; English sits last because
// its pattern accepts a bare "e".
var languages = []Entry{
	{`rus(?:sian)?|russo`, "Russian"},
	{`(?:True)?fre?(?:nch)?|fr(?:ench|a|e|anc[eê]s)?`, "French"},
	{`(?:nu)?ita(?:liano?)?`, "Italian"},
	{`castellano|spa(?:nish)?|esp?`, "Spanish"},
	{`swedish`, "Swedish"},
	{`dk|dan(?:ish)?`, "Danish"},
	{`ger(?:man)?|deu(?:tsch)?|alem[aã]o`, "German"},
	{`nordic`, "Nordic"},
	{`exyu`, "ExYu"},
	{`chs|chi(?:nese)?|(?:mand[ae]rin|ch[sn])|chin[eê]s|zh-hans`, "Chinese"},
	{`hin(?:di)?`, "Hindi"},
	{`polish|poland|pl`, "Polish"},
	{`kor(?:ean)?|coreano`, "Korean"},
	{`ben(?:gali)?|bangla`, "Bengali"},
	{`kan(?:nada)?`, "Kannada"},
	{`t[aâ]m(?:il)?`, "Tamil"},
	{`tel(?:ugu)?`, "Telugu"},
	{`mar(?:athi)?`, "Marathi"},
	{`mal(?:ayalam)?`, "Malayalam"},
	{`guj(?:arati)?`, "Gujarati"},
	{`pun(?:jabi)?`, "Punjabi"},
	{`ori(?:ya)?`, "Oriya"},
	{`japanese|ja?p|jpn|japon[eê]s`, "Japanese"},
	{`interslavic`, "Interslavic"},
	{`ara(?:bic)?`, "Arabic"},
	{`urdu`, "Urdu"},
	{`tur(?:kish)?|tr`, "Turkish"},
	{`tailand[eê]s|thai?`, "Thai"},
	{`tagalog`, "Tagalog"},
	{`ind(?:onesian)?`, "Indonesian"},
	{`vie(?:tnamese)?`, "Vietnamese"},
	{`heb(?:rew)?`, "Hebrew"},
	{`gre(?:ek)?`, "Greek"},
	{`cz(?:ech)?`, "Czech"},
	{`hun(?:garian)?`, "Hungarian"},
	{`ukr(?:ainian)?`, "Ukrainian"},
	{`fin(?:nish)?`, "Finnish"},
	{`nor(?:wegian)?`, "Norwegian"},
	{`sin(?:hala)?`, "Sinhala"},
	{`dutch|nl`, "Dutch"},
	{`p[ua]n(?:jabi)?`, "Punjabi"},
	{`por(?:tuguese)?|portugu[eèê]s[ea]?|p[rt]|port?`, "Portuguese"},
	{`alb(?:anian?)?|albanais`, "Albanian"},
	{`egypt(?:ian)?|egy`, "Egyptian"},
	{`en?(?:g(?:lish)?)?|ing(?:l[eéê]s)?`, "English"},
}

var genres = []Entry{
	{`Sci-?Fi`, "Sci-Fi"},
	{`Drama`, "Drama"},
	{`Comedy`, "Comedy"},
	{`West(?:\.|ern)?`, "Western"},
	{`Action`, "Action"},
	{`Adventure`, "Adventure"},
	{`Thriller`, "Thriller"},
}
